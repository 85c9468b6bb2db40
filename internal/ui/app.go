package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/recetas/internal/nav"
	"github.com/five82/recetas/internal/prefs"
	"github.com/five82/recetas/internal/recipe"
)

const defaultPlaceholder = "Buscar receta..."

// Options configures the UI.
type Options struct {
	Context       context.Context
	Store         *recipe.Store
	Logger        *zap.Logger
	Prefs         *prefs.File // nil disables saving the theme
	ThemeName     string
	Placeholder   string
	InitialQuery  string
	ShowEmptyHint bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store         *recipe.Store
	logger        *zap.Logger
	prefs         *prefs.File
	keys          keyMap
	showEmptyHint bool

	// UI state
	theme    Theme
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	stack    nav.Stack

	// List state
	search   textinput.Model
	all      []recipe.Recipe
	visible  []recipe.Recipe
	selected int
	offset   int

	// Detail state
	detail viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		store = recipe.Default()
	}

	placeholder := strings.TrimSpace(opts.Placeholder)
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = placeholder
	search.SetValue(opts.InitialQuery)
	search.Focus()

	m := Model{
		store:         store,
		logger:        logger,
		prefs:         opts.Prefs,
		keys:          DefaultKeyMap(),
		showEmptyHint: opts.ShowEmptyHint,
		theme:         GetTheme(opts.ThemeName),
		help:          help.New(),
		stack:         nav.New(),
		search:        search,
		all:           store.All(),
		detail:        viewport.New(0, 0),
	}
	m.applyTheme()
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			m.logger.Warn("save prefs failed", zap.Error(msg.err))
		}
		return m, nil
	}

	// Cursor blink and other input messages go to the search field.
	if m.screen() == nav.ScreenHome {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	switch m.screen() {
	case nav.ScreenDetails:
		b.WriteString(m.renderDetail())
	default:
		b.WriteString(m.renderList())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.search.Value()
}

// Visible returns the recipes currently listed.
func (m Model) Visible() []recipe.Recipe {
	out := make([]recipe.Recipe, len(m.visible))
	copy(out, m.visible)
	return out
}

// Route returns the route on top of the navigation stack.
func (m Model) Route() nav.Route {
	return m.stack.Current()
}

func (m Model) screen() nav.Screen {
	return m.stack.Current().Screen()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		cmd := m.cycleTheme()
		return m, cmd
	}

	if m.screen() == nav.ScreenDetails {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// handleMouse opens a recipe when its row is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	switch m.screen() {
	case nav.ScreenHome:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			if msg.Button == tea.MouseButtonWheelUp {
				m.moveSelection(-1)
			} else if msg.Button == tea.MouseButtonWheelDown {
				m.moveSelection(1)
			}
			return m, nil
		}
		idx, ok := m.rowAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.selected = idx
		cmd := m.open()
		return m, cmd

	case nav.ScreenDetails:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// cycleTheme switches to the next theme and saves it in the background.
func (m *Model) cycleTheme() tea.Cmd {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.screen() == nav.ScreenDetails {
		m.refreshDetail()
	}
	m.logger.Debug("theme changed", zap.String("theme", m.theme.Name))

	if m.prefs == nil {
		return nil
	}
	return savePrefsCmd(m.prefs, prefs.Prefs{Theme: m.theme.Name})
}

// resize lays out the components for the current terminal size.
func (m *Model) resize() {
	m.search.Width = max(m.width-len(m.search.Prompt)-3, 1)
	m.detail.Width = m.width
	m.detail.Height = max(m.height-chromeHeight, 1)
	if m.screen() == nav.ScreenDetails {
		m.refreshDetail()
	}
	m.ensureSelectionVisible()
}

// Messages

type prefsSavedMsg struct{ err error }

// Commands

func savePrefsCmd(file *prefs.File, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		return prefsSavedMsg{err: file.Save(p)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
