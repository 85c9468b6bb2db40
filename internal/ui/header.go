package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/recetas/internal/nav"
)

const logoText = "recetas"

// renderHeader renders the title bar for the current screen.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render(logoText, styles.Logo)}

	switch m.screen() {
	case nav.ScreenDetails:
		parts = append(parts,
			bg.Render("‹ "+nav.Home{}.Title(), styles.FaintText),
			bg.Render(m.stack.Current().Title(), styles.Text.Bold(true)),
		)
	default:
		parts = append(parts, bg.Render(m.listTitle(), styles.Text.Bold(true)))
	}

	// Row hit-testing relies on the header staying on one line.
	content := ansi.Truncate(bg.Join(parts, 2), max(m.width-2, 0), "")
	return styles.Header.Width(m.width).Render(content)
}

// renderFooter renders the short key help for the current screen.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	m.help.Width = max(m.width-2, 0)
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys.forScreen(m.screen())))
}
