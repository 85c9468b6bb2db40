package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/recetas/internal/nav"
	"github.com/five82/recetas/internal/recipe"
)

const (
	headerHeight = 1
	footerHeight = 1
	searchHeight = 2 // input + separator
	listTop      = headerHeight + searchHeight
	chromeHeight = headerHeight + footerHeight

	emptyHint = "Sin resultados"
)

// handleListKey processes keyboard input for the recipe list. Anything that
// is not a list binding is an edit to the search field.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.listHeight())
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.listHeight())
		return m, nil
	case key.Matches(msg, m.keys.First):
		m.moveSelection(-len(m.visible))
		return m, nil
	case key.Matches(msg, m.keys.Last):
		m.moveSelection(len(m.visible))
		return m, nil
	case key.Matches(msg, m.keys.Open):
		cmd := m.open()
		return m, cmd
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.refilter()
	}
	return m, cmd
}

// refilter recomputes the visible recipes from the search text.
// Preserves selection by recipe ID when possible.
func (m *Model) refilter() {
	var selectedID string
	if item := m.selectedRecipe(); item != nil {
		selectedID = item.ID
	}

	m.visible = recipe.Filter(m.search.Value(), m.all)

	if len(m.visible) == 0 {
		m.selected = 0
		m.offset = 0
		return
	}

	found := false
	if selectedID != "" {
		for i, r := range m.visible {
			if r.ID == selectedID {
				m.selected = i
				found = true
				break
			}
		}
	}

	// Item not found - clamp to valid range
	if !found && m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	m.ensureSelectionVisible()
}

// selectedRecipe returns the highlighted recipe, or nil when the list is empty.
func (m Model) selectedRecipe() *recipe.Recipe {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	r := m.visible[m.selected]
	return &r
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.visible)-1)
	m.ensureSelectionVisible()
}

// ensureSelectionVisible scrolls the list so the selected row is on screen.
func (m *Model) ensureSelectionVisible() {
	h := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
	m.offset = min(m.offset, max(len(m.visible)-h, 0))
	m.offset = max(m.offset, 0)
}

// listHeight is the number of rows available for recipes.
func (m Model) listHeight() int {
	return max(m.height-headerHeight-searchHeight-footerHeight, 1)
}

// rowAt maps a screen line to an index into visible.
func (m Model) rowAt(y int) (int, bool) {
	if y < listTop || y >= listTop+m.listHeight() {
		return 0, false
	}
	idx := y - listTop + m.offset
	if idx >= len(m.visible) {
		return 0, false
	}
	return idx, true
}

// open pushes the detail screen for the selected recipe. The search text and
// the store are left as they are.
func (m *Model) open() tea.Cmd {
	item := m.selectedRecipe()
	if item == nil {
		return nil
	}

	m.stack = m.stack.Push(nav.Details{Recipe: *item})
	m.search.Blur()
	m.refreshDetail()
	m.detail.GotoTop()

	m.logger.Debug("open recipe",
		zap.String("id", item.ID),
		zap.String("title", item.Title),
		zap.String("query", m.search.Value()),
		zap.Int("depth", m.stack.Depth()),
	)
	return nil
}

// renderList renders the search field and the visible rows.
func (m Model) renderList() string {
	styles := m.theme.Styles()

	lines := []string{
		m.search.View(),
		styles.FaintText.Render(strings.Repeat("─", max(m.width, 1))),
	}

	rows := m.listRows()
	if len(rows) == 0 && m.showEmptyHint {
		lines = append(lines, "  "+styles.MutedText.Render(emptyHint))
	}
	lines = append(lines, rows...)

	for len(lines) < searchHeight+m.listHeight() {
		lines = append(lines, "")
	}
	return strings.Join(lines[:searchHeight+m.listHeight()], "\n")
}

// listRows renders one line per visible recipe in the scroll window.
func (m Model) listRows() []string {
	if len(m.visible) == 0 {
		return nil
	}

	styles := m.theme.Styles()
	width := max(m.width, 8)
	end := min(m.offset+m.listHeight(), len(m.visible))

	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		title := truncate(m.visible[i].Title, width-4)
		if i == m.selected {
			rows = append(rows, styles.Selected.Width(width).Render("▌ "+title))
			continue
		}
		rows = append(rows, "  "+styles.Text.Render(title))
	}
	return rows
}

// listTitle returns the header label with the match count.
func (m Model) listTitle() string {
	total := len(m.all)
	if m.search.Value() == "" {
		return fmt.Sprintf("%s (%d)", m.stack.Current().Title(), total)
	}
	return fmt.Sprintf("%s (%d/%d)", m.stack.Current().Title(), len(m.visible), total)
}

// applyTheme pushes the current palette into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))

	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}
