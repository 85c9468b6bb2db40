package nav

import (
	"testing"

	"github.com/five82/recetas/internal/recipe"
)

func TestNew_StartsAtHome(t *testing.T) {
	s := New()
	if s.Current().Screen() != ScreenHome {
		t.Fatalf("Current = %v, want Home", s.Current().Screen())
	}
	if s.Depth() != 1 || s.CanGoBack() {
		t.Fatalf("Depth = %d CanGoBack = %v, want 1 false", s.Depth(), s.CanGoBack())
	}
	if s.Current().Title() != "Recetas" {
		t.Fatalf("Title = %q, want Recetas", s.Current().Title())
	}
}

func TestZeroStackBehavesLikeNew(t *testing.T) {
	var s Stack
	if s.Current().Screen() != ScreenHome || s.Depth() != 1 || s.CanGoBack() {
		t.Fatalf("zero stack should report a lone Home route")
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop on zero stack should fail")
	}
}

func TestPushCarriesRecipe(t *testing.T) {
	r := recipe.Recipe{ID: "1", Title: "Ensalada César"}
	s := New().Push(Details{Recipe: r})

	d, ok := s.Current().(Details)
	if !ok {
		t.Fatalf("Current = %T, want Details", s.Current())
	}
	if d.Recipe.ID != "1" || d.Recipe.Title != "Ensalada César" {
		t.Fatalf("Details.Recipe = %#v, want the pushed recipe", d.Recipe)
	}
	if s.Current().Title() != "Detalle de receta" {
		t.Fatalf("Title = %q, want Detalle de receta", s.Current().Title())
	}
}

func TestPopReturnsHome(t *testing.T) {
	s := New().Push(Details{Recipe: recipe.Recipe{ID: "2"}})
	back, ok := s.Pop()
	if !ok {
		t.Fatalf("Pop returned ok=false")
	}
	if back.Current().Screen() != ScreenHome || back.Depth() != 1 {
		t.Fatalf("after Pop: screen=%v depth=%d, want Home 1", back.Current().Screen(), back.Depth())
	}

	root, ok := back.Pop()
	if ok {
		t.Fatalf("Pop at root returned ok=true")
	}
	if root.Depth() != 1 {
		t.Fatalf("root Depth = %d, want 1", root.Depth())
	}
}

func TestPushDoesNotAlias(t *testing.T) {
	base := New().Push(Details{Recipe: recipe.Recipe{ID: "1"}})
	a := base.Push(Details{Recipe: recipe.Recipe{ID: "a"}})
	b := base.Push(Details{Recipe: recipe.Recipe{ID: "b"}})

	if got := a.Current().(Details).Recipe.ID; got != "a" {
		t.Fatalf("a top = %q, want a", got)
	}
	if got := b.Current().(Details).Recipe.ID; got != "b" {
		t.Fatalf("b top = %q, want b", got)
	}
	if base.Depth() != 2 {
		t.Fatalf("base Depth = %d, want 2", base.Depth())
	}
}

func TestScreenString(t *testing.T) {
	if ScreenHome.String() != "Home" || ScreenDetails.String() != "Details" || Screen(9).String() != "Unknown" {
		t.Fatalf("unexpected Screen names")
	}
}
