package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mstolarski/emwiki"
)

// Compile-time interface verification.
var _ emwiki.CharacterService = (*CharacterService)(nil)

// CharacterService implements emwiki.CharacterService using SQLite.
type CharacterService struct {
	db *DB
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(db *DB) *CharacterService {
	return &CharacterService{db: db}
}

// CreateCharacter inserts a new character record. Records are always
// inserted as new rows; the service performs no upsert or merge.
func (s *CharacterService) CreateCharacter(ctx context.Context, c *emwiki.Character) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.ScrapedAt = time.Now().UTC()

	otherImages, err := encodeJSON(c.OtherImages, c.OtherImages == nil)
	if err != nil {
		return err
	}
	titles, err := encodeJSON(c.Titles, c.Titles == nil)
	if err != nil {
		return err
	}
	appearances, err := encodeJSON(c.Appearances, c.Appearances == nil)
	if err != nil {
		return err
	}
	voiceActors, err := encodeJSON(c.VoiceActors, c.VoiceActors == nil)
	if err != nil {
		return err
	}

	var primaryImage any
	if c.PrimaryImage != nil {
		primaryImage = *c.PrimaryImage
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO characters (id, name, source_url, source_hash, primary_image, other_images, titles, appearances, voice_actors, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.SourceURL, c.SourceHash, primaryImage, otherImages, titles,
		appearances, voiceActors, c.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindCharacterByID retrieves a character by ID.
func (s *CharacterService) FindCharacterByID(ctx context.Context, id string) (*emwiki.Character, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_url, source_hash, primary_image, other_images, titles, appearances, voice_actors, scraped_at
		FROM characters
		WHERE id = ?
	`, id)

	c, err := scanCharacter(row.Scan)
	if err == sql.ErrNoRows {
		return nil, emwiki.Errorf(emwiki.ENOTFOUND, "character not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindCharacters retrieves characters matching the filter, ordered by name.
func (s *CharacterService) FindCharacters(ctx context.Context, filter emwiki.CharacterFilter) ([]*emwiki.Character, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_url, source_hash, primary_image, other_images, titles, appearances, voice_actors, scraped_at FROM characters WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var characters []*emwiki.Character
	for rows.Next() {
		c, err := scanCharacter(rows.Scan)
		if err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

// DeleteCharacter permanently removes a character.
func (s *CharacterService) DeleteCharacter(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM characters WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return emwiki.Errorf(emwiki.ENOTFOUND, "character not found")
	}
	return nil
}

// scanCharacter reads one characters row, restoring nullable columns to
// tagged-absent fields.
func scanCharacter(scan func(dest ...any) error) (*emwiki.Character, error) {
	var c emwiki.Character
	var primaryImage, otherImages, titles, appearances, voiceActors sql.NullString
	var scrapedAt string

	err := scan(&c.ID, &c.Name, &c.SourceURL, &c.SourceHash, &primaryImage,
		&otherImages, &titles, &appearances, &voiceActors, &scrapedAt)
	if err != nil {
		return nil, err
	}

	if primaryImage.Valid {
		c.PrimaryImage = &primaryImage.String
	}
	if c.OtherImages, err = decodeStrings(otherImages); err != nil {
		return nil, err
	}
	if c.Titles, err = decodeStrings(titles); err != nil {
		return nil, err
	}
	if c.Appearances, err = decodeStrings(appearances); err != nil {
		return nil, err
	}
	if c.VoiceActors, err = decodeActors(voiceActors); err != nil {
		return nil, err
	}
	if c.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}

	return &c, nil
}
