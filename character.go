package emwiki

import (
	"context"
	"time"
)

// Voice actor language keys. Only languages with at least one credited
// actor appear in Character.VoiceActors.
const (
	LangEnglish  = "english"
	LangJapanese = "japanese"
)

// Character is one scraped record, built fresh per detail page.
//
// Every field except Name is optional. Absence is tagged explicitly:
// a nil pointer, nil slice, or nil map means the field was not found
// on the page, which is distinct from an empty value. The extractor
// never produces an empty non-nil slice or map.
type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// SourceURL and SourceHash identify the page the record came from.
	SourceURL  string `json:"sourceUrl"`
	SourceHash string `json:"sourceHash"`

	// PrimaryImage is the image shown in the currently-displayed
	// gallery tab, or the first matching image when no tab is marked
	// as displayed.
	PrimaryImage *string `json:"primaryImage,omitempty"`

	// OtherImages excludes PrimaryImage, is deduplicated preserving
	// first-seen order, and is capped by the extractor's configured
	// maximum.
	OtherImages []string `json:"otherImages,omitempty"`

	Titles      []string `json:"titles,omitempty"`
	Appearances []string `json:"appearances,omitempty"`

	// VoiceActors maps a language key (LangEnglish, LangJapanese) to
	// credited voice actors in document order.
	VoiceActors map[string][]string `json:"voiceActors,omitempty"`

	ScrapedAt time.Time `json:"scrapedAt"`
}

// Validate returns an error if the character contains invalid fields.
func (c *Character) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "character name required")
	}
	return nil
}

// CharacterService represents a service for managing scraped characters.
// The crawler only ever creates; the remaining methods serve the CLI.
type CharacterService interface {
	// CreateCharacter inserts a new character record. Records are
	// always inserted as new documents; there is no upsert.
	CreateCharacter(ctx context.Context, c *Character) error

	// FindCharacterByID retrieves a character by ID.
	// Returns ENOTFOUND if the character does not exist.
	FindCharacterByID(ctx context.Context, id string) (*Character, error)

	// FindCharacters retrieves characters matching the filter,
	// ordered by name.
	FindCharacters(ctx context.Context, filter CharacterFilter) ([]*Character, error)

	// DeleteCharacter permanently removes a character.
	// Returns ENOTFOUND if the character does not exist.
	DeleteCharacter(ctx context.Context, id string) error
}

// CharacterFilter represents a filter for FindCharacters.
type CharacterFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
