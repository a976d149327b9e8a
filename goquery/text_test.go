package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mstolarski/emwiki/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selection(t *testing.T, html, selector string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Find(selector)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("concatenates text split across nested tags", func(t *testing.T) {
		t.Parallel()

		sel := selection(t, `<ul><li>Prince of <a href="/wiki/Altea">Altea</a></li></ul>`, "li")
		assert.Equal(t, "Prince of Altea", goquery.Flatten(sel))
	})

	t.Run("preserves reading order with deeper nesting", func(t *testing.T) {
		t.Parallel()

		sel := selection(t, `<p>Hero-<b>King <i>of</i></b> Light</p>`, "p")
		assert.Equal(t, "Hero-King of Light", goquery.Flatten(sel))
	})

	t.Run("returns empty string for empty fragment", func(t *testing.T) {
		t.Parallel()

		sel := selection(t, `<p></p>`, "p")
		assert.Empty(t, goquery.Flatten(sel))
	})

	t.Run("returns empty string for missing selection", func(t *testing.T) {
		t.Parallel()

		sel := selection(t, `<p>text</p>`, "li")
		assert.Empty(t, goquery.Flatten(sel))
	})
}
