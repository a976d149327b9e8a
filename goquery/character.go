package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mstolarski/emwiki"
)

// DefaultMaxOtherImages bounds the OtherImages list when no explicit
// maximum is configured.
const DefaultMaxOtherImages = 5

// Row label keywords. Matching is a case-sensitive substring check
// against the row's header cell text.
const (
	labelAppearance = "Appearance"
	labelTitle      = "Title"
	labelVoice      = "Voice"
)

// Compile-time interface verification.
var _ emwiki.CharacterExtractor = (*Extractor)(nil)

// Extractor implements emwiki.CharacterExtractor for Fire Emblem wiki
// character pages. Extraction degrades gracefully: a missing field is
// omitted from the record, never an error. Only a missing character
// name fails the record as a whole.
type Extractor struct {
	baseURL        string
	maxOtherImages int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxOtherImages caps the OtherImages list.
// Defaults to DefaultMaxOtherImages if not specified.
func WithMaxOtherImages(n int) ExtractorOption {
	return func(e *Extractor) {
		e.maxOtherImages = n
	}
}

// NewExtractor creates an Extractor that resolves the wiki's
// root-relative image sources against baseURL.
func NewExtractor(baseURL string, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		baseURL:        baseURL,
		maxOtherImages: DefaultMaxOtherImages,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses a character detail page into a record.
//
// The character name is the text of the page's primary heading,
// verbatim. A page without a non-empty heading yields ENOTFOUND and no
// other extraction runs.
func (e *Extractor) Extract(rawHTML string) (*emwiki.Character, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, emwiki.Errorf(emwiki.EINVALID, "failed to parse HTML: %v", err)
	}

	name := doc.Find("h1#firstHeading").First().Text()
	if name == "" {
		return nil, emwiki.Errorf(emwiki.ENOTFOUND, "character name not found")
	}

	c := &emwiki.Character{Name: name}
	e.extractImages(doc, c)
	e.extractAppearances(doc, c)
	e.extractTitles(doc, c)
	e.extractVoiceActors(doc, c)

	return c, nil
}

// extractImages selects the primary image and the capped list of other
// images. Candidates are gallery images whose source contains the
// character name either as displayed or lowercased; the wiki's file
// names are inconsistently cased relative to the display name, so both
// forms are checked.
func (e *Extractor) extractImages(doc *goquery.Document, c *emwiki.Character) {
	lower := strings.ToLower(c.Name)
	matchesName := func(src string) bool {
		return strings.Contains(src, c.Name) || strings.Contains(src, lower)
	}

	// Candidate sources, deduplicated in first-seen order.
	var candidates []string
	seen := make(map[string]bool)
	doc.Find("a.image img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" || !matchesName(src) {
			return
		}
		if seen[src] {
			return
		}
		seen[src] = true
		candidates = append(candidates, src)
	})
	if len(candidates) == 0 {
		return
	}

	// The image gallery is tabbed and only one tab is shown by default.
	// Prefer the candidate inside the displayed tab; otherwise the
	// first candidate in document order wins.
	var primary string
	doc.Find(`div.tab_content[style="display:block;"] a.image img`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, ok := sel.Attr("src")
		if !ok || !matchesName(src) {
			return true
		}
		primary = src
		return false
	})
	if primary == "" {
		primary = candidates[0]
	}

	var others []string
	for _, src := range candidates {
		if src == primary {
			continue
		}
		if len(others) >= e.maxOtherImages {
			break
		}
		others = append(others, e.baseURL+src)
	}

	primaryURL := e.baseURL + primary
	c.PrimaryImage = &primaryURL
	if len(others) > 0 {
		c.OtherImages = others
	}
}

// extractAppearances collects the title attribute of every link in the
// "Appearance" row's data cell. The title attribute carries the wiki's
// canonical game name where the visible link text may be abbreviated;
// a link without one contributes nothing.
func (e *Extractor) extractAppearances(doc *goquery.Document, c *emwiki.Character) {
	row := findLabeledRow(doc, labelAppearance)
	if row == nil {
		return
	}

	var appearances []string
	row.Find("td a").Each(func(_ int, a *goquery.Selection) {
		if title, ok := a.Attr("title"); ok {
			appearances = append(appearances, title)
		}
	})
	if len(appearances) > 0 {
		c.Appearances = appearances
	}
}

// extractTitles collects the character's honorific titles from the
// "Title" row. List items are preferred; paragraphs are the fallback
// for pages that don't use a bulleted list. A row with neither
// structure yields no titles.
func (e *Extractor) extractTitles(doc *goquery.Document, c *emwiki.Character) {
	row := findLabeledRow(doc, labelTitle)
	if row == nil {
		return
	}

	items := row.Find("td li")
	if items.Length() == 0 {
		items = row.Find("td > p")
	}

	var titles []string
	items.Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(Flatten(sel)); text != "" {
			titles = append(titles, text)
		}
	})
	if len(titles) > 0 {
		c.Titles = titles
	}
}

// extractVoiceActors runs one pass over the "Voice" row's data cell per
// recognized language, keying actors under the language with a match.
// The language of an actor is read from the small annotation element
// immediately following the actor's link. This is positional, not
// semantic: a mis-tagged annotation in the source markup misattributes
// the actor.
func (e *Extractor) extractVoiceActors(doc *goquery.Document, c *emwiki.Character) {
	row := findLabeledRow(doc, labelVoice)
	if row == nil {
		return
	}
	cell := row.Find("td")

	languages := []struct {
		key   string
		label string
	}{
		{emwiki.LangEnglish, "English"},
		{emwiki.LangJapanese, "Japanese"},
	}

	actors := make(map[string][]string)
	for _, lang := range languages {
		var names []string
		cell.Find("a").Each(func(_ int, a *goquery.Selection) {
			annotation := a.Next()
			if !annotation.Is("small") {
				return
			}
			if !strings.Contains(annotation.Text(), lang.label) {
				return
			}
			names = append(names, a.Text())
		})
		if len(names) > 0 {
			actors[lang.key] = names
		}
	}
	if len(actors) > 0 {
		c.VoiceActors = actors
	}
}

// findLabeledRow returns the first table row whose header cell text
// contains the label keyword, or nil if no such row exists.
func findLabeledRow(doc *goquery.Document, label string) *goquery.Selection {
	var row *goquery.Selection
	doc.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		found := false
		tr.ChildrenFiltered("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
			if strings.Contains(th.Text(), label) {
				found = true
				return false
			}
			return true
		})
		if found {
			row = tr
			return false
		}
		return true
	})
	return row
}
