package emwiki

// CharacterExtractor builds a Character record from the raw HTML of a
// detail page.
type CharacterExtractor interface {
	// Extract parses a detail-page document and returns the character
	// record found on it.
	//
	// A page without a character name yields an ENOTFOUND error ("no
	// record"); no other field is extracted in that case. All other
	// fields are optional: a field whose markup is absent is simply
	// omitted from the record, never surfaced as an error.
	Extract(html string) (*Character, error)
}
