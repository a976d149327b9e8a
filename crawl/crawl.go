// Package crawl provides the crawl scheduler for the wiki scraper.
// It drives the frontier loop, feeding listing pages to the link
// discoverer and detail pages to the character extractor, and hands
// completed records to the store. The extraction core itself is
// synchronous and stateless; all scheduling, deduplication, retry, and
// rate control live here.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mstolarski/emwiki"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing. The wiki has on the order of a thousand character
// pages; 10k expected URLs keeps the false positive rate comfortably
// below the configured bound.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Crawler orchestrates a crawl from a category listing start URL.
type Crawler struct {
	Fetcher    emwiki.Fetcher
	Links      emwiki.LinkDiscoverer
	Characters emwiki.CharacterExtractor
	Store      emwiki.CharacterService
	Limiter    emwiki.DomainLimiter

	// Concurrency bounds concurrent detail-page fetches. Listing pages
	// are processed sequentially to keep pagination order stable.
	Concurrency int

	// RetryDelays configures fetch backoff. Nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	// MaxListings caps the number of listing pages followed.
	// Zero means no cap.
	MaxListings int
}

// Result holds the outcome of a crawl.
type Result struct {
	// Listings is the number of listing pages processed.
	Listings int

	// Saved counts records handed to the store.
	Saved int

	// Skipped counts detail pages without a character name.
	Skipped int

	// Failed counts pages that could not be fetched or parsed, and
	// records the store rejected.
	Failed int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressListing ProgressType = iota
	ProgressSaved
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type ProgressType
	URL  string
	Name string
	Err  error
}

// ProgressFunc is a callback for reporting crawl progress.
// It is never called concurrently.
type ProgressFunc func(event ProgressEvent)

// Run crawls the wiki starting from a category listing URL and stores
// every character record found. It returns when the frontier is
// exhausted, the listing cap is reached, or the context is canceled;
// a canceled crawl returns the partial result without error.
func (c *Crawler) Run(ctx context.Context, startURL string, progress ProgressFunc) (*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(emwiki.Request{URL: startURL, Kind: emwiki.KindListing})

	var mu sync.Mutex // guards result and progress
	result := &Result{}
	emit := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for {
		req, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if req.Kind == emwiki.KindListing {
			c.processListing(ctx, req.URL, delays, frontier, result, emit, &mu)
			continue
		}

		g.Go(func() error {
			c.processDetail(gctx, req.URL, delays, result, emit, &mu)
			return nil
		})
	}

	_ = g.Wait()

	mu.Lock()
	emit(ProgressEvent{Type: ProgressFinished})
	mu.Unlock()

	return result, nil
}

// processListing fetches one listing page and feeds discovered links
// back into the frontier.
func (c *Crawler) processListing(ctx context.Context, pageURL string, delays []time.Duration, frontier *Frontier, result *Result, emit ProgressFunc, mu *sync.Mutex) {
	if err := c.wait(ctx, pageURL); err != nil {
		return
	}

	html, err := FetchWithRetry(ctx, pageURL, c.Fetcher.Fetch, delays)
	if err != nil {
		mu.Lock()
		result.Failed++
		emit(ProgressEvent{Type: ProgressFailed, URL: pageURL, Err: err})
		mu.Unlock()
		return
	}

	links, err := c.Links.DiscoverLinks(html)
	if err != nil {
		mu.Lock()
		result.Failed++
		emit(ProgressEvent{Type: ProgressFailed, URL: pageURL, Err: err})
		mu.Unlock()
		return
	}

	mu.Lock()
	result.Listings++
	listings := result.Listings
	emit(ProgressEvent{Type: ProgressListing, URL: pageURL})
	mu.Unlock()

	for _, u := range links.Characters {
		frontier.Push(emwiki.Request{URL: u, Kind: emwiki.KindDetail})
	}
	if links.NextPage != "" {
		if c.MaxListings > 0 && listings >= c.MaxListings {
			return
		}
		frontier.Push(emwiki.Request{URL: links.NextPage, Kind: emwiki.KindListing})
	}
}

// processDetail fetches one detail page, extracts the character record,
// and hands it to the store. A page without a character name is a
// silently skipped subject, not a failure.
func (c *Crawler) processDetail(ctx context.Context, pageURL string, delays []time.Duration, result *Result, emit ProgressFunc, mu *sync.Mutex) {
	if err := c.wait(ctx, pageURL); err != nil {
		return
	}

	html, err := FetchWithRetry(ctx, pageURL, c.Fetcher.Fetch, delays)
	if err != nil {
		mu.Lock()
		result.Failed++
		emit(ProgressEvent{Type: ProgressFailed, URL: pageURL, Err: err})
		mu.Unlock()
		return
	}

	character, err := c.Characters.Extract(html)
	if err != nil {
		mu.Lock()
		if emwiki.ErrorCode(err) == emwiki.ENOTFOUND {
			result.Skipped++
			emit(ProgressEvent{Type: ProgressSkipped, URL: pageURL})
		} else {
			result.Failed++
			emit(ProgressEvent{Type: ProgressFailed, URL: pageURL, Err: err})
		}
		mu.Unlock()
		return
	}

	character.SourceURL = pageURL
	character.SourceHash = hashContent(html)

	if err := c.Store.CreateCharacter(ctx, character); err != nil {
		mu.Lock()
		result.Failed++
		emit(ProgressEvent{Type: ProgressFailed, URL: pageURL, Err: err})
		mu.Unlock()
		return
	}

	mu.Lock()
	result.Saved++
	emit(ProgressEvent{Type: ProgressSaved, URL: pageURL, Name: character.Name})
	mu.Unlock()
}

// wait applies the per-domain rate limit for a URL, if a limiter is
// configured.
func (c *Crawler) wait(ctx context.Context, rawURL string) error {
	if c.Limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return c.Limiter.Wait(ctx, u.Host)
}

// hashContent computes an xxhash of the source page for change
// detection across runs.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
