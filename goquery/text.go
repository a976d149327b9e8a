// Package goquery implements emwiki's HTML extraction using CSS
// selectors: the character detail-page extractor and the category
// listing link discoverer.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Flatten returns the concatenated text content of a selection,
// preserving the left-to-right reading order of nested text nodes.
// A title split between a leading text node and a child link element
// ("Prince of " + <a>Altea</a>) therefore concatenates to the full
// string. Returns an empty string for a selection with no text.
func Flatten(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		flattenNode(&b, n)
	}
	return b.String()
}

func flattenNode(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flattenNode(b, c)
	}
}
