package recipe

import (
	"fmt"
	"strings"
)

// Store is the fixed, read-only collection of recipes.
// It is built once and never mutated afterwards.
type Store struct {
	recipes []Recipe
	byID    map[string]int
}

// NewStore validates the given recipes and returns a store holding copies of them.
func NewStore(recipes ...Recipe) (*Store, error) {
	s := &Store{
		recipes: make([]Recipe, 0, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}
	for _, r := range recipes {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, fmt.Errorf("recipe %q: %w", r.Title, ErrEmptyID)
		}
		if _, dup := s.byID[id]; dup {
			return nil, fmt.Errorf("recipe %q: %w", id, ErrDuplicateID)
		}
		s.byID[id] = len(s.recipes)
		s.recipes = append(s.recipes, r.Clone())
	}
	return s, nil
}

// All returns every recipe in store order. The slice is a copy.
func (s *Store) All() []Recipe {
	if s == nil || len(s.recipes) == 0 {
		return nil
	}
	out := make([]Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Len reports how many recipes the store holds.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.recipes)
}

// ByID looks a recipe up by its identifier.
func (s *Store) ByID(id string) (Recipe, bool) {
	if s == nil {
		return Recipe{}, false
	}
	idx, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return Recipe{}, false
	}
	return s.recipes[idx].Clone(), true
}
