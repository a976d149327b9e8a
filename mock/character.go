package mock

import (
	"context"

	"github.com/mstolarski/emwiki"
)

var _ emwiki.CharacterService = (*CharacterService)(nil)

// CharacterService is a mock implementation of emwiki.CharacterService.
type CharacterService struct {
	CreateCharacterFn   func(ctx context.Context, c *emwiki.Character) error
	FindCharacterByIDFn func(ctx context.Context, id string) (*emwiki.Character, error)
	FindCharactersFn    func(ctx context.Context, filter emwiki.CharacterFilter) ([]*emwiki.Character, error)
	DeleteCharacterFn   func(ctx context.Context, id string) error
}

func (s *CharacterService) CreateCharacter(ctx context.Context, c *emwiki.Character) error {
	return s.CreateCharacterFn(ctx, c)
}

func (s *CharacterService) FindCharacterByID(ctx context.Context, id string) (*emwiki.Character, error) {
	return s.FindCharacterByIDFn(ctx, id)
}

func (s *CharacterService) FindCharacters(ctx context.Context, filter emwiki.CharacterFilter) ([]*emwiki.Character, error) {
	return s.FindCharactersFn(ctx, filter)
}

func (s *CharacterService) DeleteCharacter(ctx context.Context, id string) error {
	return s.DeleteCharacterFn(ctx, id)
}
