package emwiki

import "context"

// RequestKind distinguishes the two kinds of pages the crawler visits.
type RequestKind int

// Request kinds. Listing pages sort ahead of detail pages in the
// frontier so pagination is discovered early.
const (
	KindDetail RequestKind = iota
	KindListing
)

// Request is one pending fetch in the crawl frontier.
type Request struct {
	URL  string
	Kind RequestKind
}

// URLFrontier manages the crawl queue with deduplication of
// already-visited URLs. The extraction core performs no deduplication
// itself; a listing chain that pointed backward would otherwise loop
// forever.
type URLFrontier interface {
	// Push adds a request to the frontier.
	// Returns false if the URL has already been seen.
	Push(req Request) bool

	// Pop returns the next request.
	// Returns false if the frontier is empty.
	Pop() (Request, bool)

	// Len returns the number of queued requests.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
