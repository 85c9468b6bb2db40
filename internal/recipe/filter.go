package recipe

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the recipes whose title contains query, ignoring case.
// Store order is preserved and an empty query matches everything.
// Only case is folded: "cesar" does not match "César".
func Filter(query string, recipes []Recipe) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Matches(query, r.Title) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether title contains query, ignoring case.
func Matches(query, title string) bool {
	return strings.Contains(fold(title), fold(query))
}

// fold lower-cases s with Unicode rules.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
