package emwiki

// Links holds the crawl continuation links discovered on one category
// listing page.
type Links struct {
	// Characters are absolute detail-page URLs in document order.
	Characters []string

	// NextPage is the absolute URL of the next listing page, or empty
	// when pagination stops.
	NextPage string
}

// LinkDiscoverer extracts detail-page links and the optional next-page
// link from a listing document. It performs no deduplication and no
// cycle detection; the crawl frontier owns tracking of already-visited
// URLs.
type LinkDiscoverer interface {
	DiscoverLinks(html string) (*Links, error)
}
