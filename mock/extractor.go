package mock

import "github.com/mstolarski/emwiki"

var _ emwiki.CharacterExtractor = (*CharacterExtractor)(nil)

// CharacterExtractor is a mock implementation of emwiki.CharacterExtractor.
type CharacterExtractor struct {
	ExtractFn func(html string) (*emwiki.Character, error)
}

func (e *CharacterExtractor) Extract(html string) (*emwiki.Character, error) {
	return e.ExtractFn(html)
}
