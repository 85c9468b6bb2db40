package recipe

import "errors"

var (
	// ErrNotFound is returned when no recipe carries the requested ID.
	ErrNotFound = errors.New("recipe not found")
	// ErrDuplicateID is returned when two recipes share an ID.
	ErrDuplicateID = errors.New("duplicate recipe id")
	// ErrEmptyID is returned when a recipe has a blank ID.
	ErrEmptyID = errors.New("recipe id is empty")
)

// Recipe describes a single dish.
type Recipe struct {
	ID          string
	Title       string
	Ingredients []string
	Steps       []string
}

// Clone returns a deep copy so callers never share the store's backing arrays.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = cloneStrings(r.Ingredients)
	out.Steps = cloneStrings(r.Steps)
	return out
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
