package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// truncate trims value and cuts it to width terminal cells, ending with an
// ellipsis when shortened. A non-positive width leaves it whole.
func truncate(value string, width int) string {
	value = strings.TrimSpace(value)
	if width <= 0 {
		return value
	}
	return ansi.Truncate(value, width, ellipsis)
}
