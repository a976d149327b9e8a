package mock

import "github.com/mstolarski/emwiki"

var _ emwiki.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of emwiki.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html string) (*emwiki.Links, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html string) (*emwiki.Links, error) {
	return d.DiscoverLinksFn(html)
}
