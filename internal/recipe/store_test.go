package recipe

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_SampleCatalog(t *testing.T) {
	s := Default()
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	all := s.All()
	if all[0].Title != "Ensalada César" || all[1].Title != "Pasta al Pesto" {
		t.Fatalf("titles = %q, %q; want catalog order", all[0].Title, all[1].Title)
	}
}

func TestNewStore_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewStore(Recipe{ID: "a", Title: "One"}, Recipe{ID: "a", Title: "Two"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("NewStore error = %v, want ErrDuplicateID", err)
	}
}

func TestNewStore_RejectsEmptyID(t *testing.T) {
	_, err := NewStore(Recipe{ID: "  ", Title: "Blank"})
	if !errors.Is(err, ErrEmptyID) {
		t.Fatalf("NewStore error = %v, want ErrEmptyID", err)
	}
}

func TestStore_AllReturnsIndependentCopies(t *testing.T) {
	s, err := NewStore(Recipe{ID: "1", Title: "Sopa", Ingredients: []string{"Agua"}})
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	first := s.All()
	first[0].Title = "changed"
	first[0].Ingredients[0] = "changed"

	second := s.All()
	want := []Recipe{{ID: "1", Title: "Sopa", Ingredients: []string{"Agua"}}}
	if diff := cmp.Diff(want, second); diff != "" {
		t.Fatalf("All() mismatch after mutating a copy (-want +got):\n%s", diff)
	}
}

func TestNewStore_CopiesInput(t *testing.T) {
	steps := []string{"Hervir"}
	s, err := NewStore(Recipe{ID: "1", Title: "Sopa", Steps: steps})
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	steps[0] = "changed"

	got, ok := s.ByID("1")
	if !ok {
		t.Fatalf("ByID(1) not found")
	}
	if got.Steps[0] != "Hervir" {
		t.Fatalf("Steps[0] = %q, want Hervir", got.Steps[0])
	}
}

func TestStore_ByID(t *testing.T) {
	s := Default()

	got, ok := s.ByID("2")
	if !ok || got.Title != "Pasta al Pesto" {
		t.Fatalf("ByID(2) = %#v, %v; want Pasta al Pesto", got, ok)
	}
	if _, ok := s.ByID("99"); ok {
		t.Fatalf("ByID(99) found a recipe, want none")
	}
}

func TestStore_NilIsEmpty(t *testing.T) {
	var s *Store
	if s.Len() != 0 || s.All() != nil {
		t.Fatalf("nil store should be empty")
	}
	if _, ok := s.ByID("1"); ok {
		t.Fatalf("nil store ByID should miss")
	}
}
