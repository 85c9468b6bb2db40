package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/recetas/internal/nav"
	"github.com/five82/recetas/internal/recipe"
)

// handleDetailKey processes keyboard input for the detail screen.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		cmd := m.back()
		return m, cmd
	case key.Matches(msg, m.keys.DetailHelp):
		m.showHelp = true
	case key.Matches(msg, m.keys.Top):
		m.detail.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detail.GotoBottom()
	case key.Matches(msg, m.keys.ScrollUp):
		m.detail.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.detail.ScrollDown(1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detail.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detail.HalfPageDown()
	default:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// back pops the detail screen. Nothing is carried back to the list.
func (m *Model) back() tea.Cmd {
	stack, ok := m.stack.Pop()
	if !ok {
		return nil
	}
	m.stack = stack
	m.logger.Debug("back",
		zap.String("screen", m.screen().String()),
		zap.Int("depth", m.stack.Depth()),
	)
	return m.search.Focus()
}

// currentRecipe returns the recipe carried by the Details route.
func (m Model) currentRecipe() (recipe.Recipe, bool) {
	d, ok := m.stack.Current().(nav.Details)
	if !ok {
		return recipe.Recipe{}, false
	}
	return d.Recipe, true
}

// refreshDetail re-renders the viewport content for the current recipe.
func (m *Model) refreshDetail() {
	r, ok := m.currentRecipe()
	if !ok {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.detailContent(r, m.detail.Width))
}

// renderDetail renders the scrollable detail pane.
func (m Model) renderDetail() string {
	return m.detail.View()
}

// detailContent styles the recipe document for the given width.
func (m Model) detailContent(r recipe.Recipe, width int) string {
	styles := m.theme.Styles()
	wrap := lipgloss.NewStyle().PaddingLeft(1)
	if width > 2 {
		wrap = wrap.Width(width - 1)
	}

	var lines []string
	for _, line := range recipe.Lines(r) {
		switch line.Kind {
		case recipe.LineTitle:
			lines = append(lines, styles.RecipeTitle.Render(line.Text))
		case recipe.LineHeading:
			lines = append(lines, "", styles.Heading.Render(line.Text))
		case recipe.LineIngredient:
			text := strings.TrimPrefix(line.Text, recipe.Bullet+" ")
			lines = append(lines, styles.Bullet.Render(recipe.Bullet)+" "+styles.Text.Render(text))
		case recipe.LineStep:
			num, text, _ := strings.Cut(line.Text, " ")
			lines = append(lines, styles.StepNumber.Render(num)+" "+styles.Text.Render(text))
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = wrap.Render(l)
	}
	return strings.Join(out, "\n")
}
