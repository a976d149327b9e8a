package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/mstolarski/emwiki"
)

// Compile-time interface verification.
var _ emwiki.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory crawl frontier with Bloom filter
// deduplication of visited URLs. Listing requests sort ahead of detail
// requests so pagination is followed early; within a kind, requests
// come out in insertion order, keeping crawls reproducible. It is safe
// for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue *requestHeap
	seq   int
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &requestHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewWithEstimates(n, fpRate),
		queue: h,
	}
}

// Push adds a request to the frontier.
// Returns false if the URL has already been seen. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(req emwiki.Request) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	req.URL = stripFragment(req.URL)
	if f.seen.TestString(req.URL) {
		return false
	}
	f.seen.AddString(req.URL)

	f.seq++
	heap.Push(f.queue, queued{req: req, seq: f.seq})
	return true
}

// Pop returns the next request.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (emwiki.Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return emwiki.Request{}, false
	}
	q, _ := heap.Pop(f.queue).(queued)
	return q.req, true
}

// Len returns the number of queued requests.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// queued pairs a request with its insertion sequence number.
type queued struct {
	req emwiki.Request
	seq int
}

// requestHeap implements heap.Interface. Listing requests come first;
// ties break on sequence number.
type requestHeap []queued

func (h requestHeap) Len() int { return len(h) }

func (h requestHeap) Less(i, j int) bool {
	if h[i].req.Kind != h[j].req.Kind {
		return h[i].req.Kind > h[j].req.Kind
	}
	return h[i].seq < h[j].seq
}

func (h requestHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *requestHeap) Push(x any) {
	q, _ := x.(queued)
	*h = append(*h, q)
}

func (h *requestHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
