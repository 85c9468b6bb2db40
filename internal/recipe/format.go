package recipe

import (
	"fmt"
	"strings"
)

// Section headings and markers used by every detail rendering.
const (
	IngredientsHeading = "Ingredientes:"
	StepsHeading       = "Pasos:"
	Bullet             = "•"
)

// LineKind classifies a line of the detail document.
type LineKind int

const (
	LineTitle LineKind = iota
	LineHeading
	LineIngredient
	LineStep
)

// Line is one rendered row of the detail document.
type Line struct {
	Kind LineKind
	Text string
}

// Lines lays out a recipe for display: the title, then every ingredient with a
// bullet, then every step numbered from 1. Empty sections keep their heading.
func Lines(r Recipe) []Line {
	out := make([]Line, 0, 3+len(r.Ingredients)+len(r.Steps))
	out = append(out, Line{Kind: LineTitle, Text: r.Title})

	out = append(out, Line{Kind: LineHeading, Text: IngredientsHeading})
	for _, ing := range r.Ingredients {
		out = append(out, Line{Kind: LineIngredient, Text: Bullet + " " + ing})
	}

	out = append(out, Line{Kind: LineHeading, Text: StepsHeading})
	for i, step := range r.Steps {
		out = append(out, Line{Kind: LineStep, Text: fmt.Sprintf("%d. %s", i+1, step)})
	}
	return out
}

// PlainText joins Lines into newline-separated text.
func PlainText(r Recipe) string {
	lines := Lines(r)
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}

// Markdown renders the recipe as a markdown document.
func Markdown(r Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)

	fmt.Fprintf(&b, "## %s\n\n", strings.TrimSuffix(IngredientsHeading, ":"))
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", strings.TrimSuffix(StepsHeading, ":"))
	for i, step := range r.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}
