package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mstolarski/emwiki"
)

// Compile-time interface verification.
var _ emwiki.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer implements emwiki.LinkDiscoverer for MediaWiki category
// listing pages. Detail links come from the category-listing container
// (#mw-pages); the next-page link is the anchor in that container whose
// text contains the literal "next".
type Discoverer struct {
	baseURL string
}

// NewDiscoverer creates a Discoverer that resolves the wiki's
// root-relative hrefs against baseURL.
func NewDiscoverer(baseURL string) *Discoverer {
	return &Discoverer{baseURL: baseURL}
}

// DiscoverLinks parses a listing page and returns detail-page URLs in
// document order plus the next-page URL, if any. A document without a
// category container yields empty results, not an error.
func (d *Discoverer) DiscoverLinks(rawHTML string) (*emwiki.Links, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, emwiki.Errorf(emwiki.EINVALID, "failed to parse HTML: %v", err)
	}

	links := &emwiki.Links{}

	doc.Find("div#mw-pages div.mw-category-group li a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		links.Characters = append(links.Characters, d.baseURL+href)
	})

	doc.Find("div#mw-pages a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(sel.Text(), "next") {
			return true
		}
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return true
		}
		links.NextPage = d.baseURL + href
		return false
	})

	return links, nil
}
