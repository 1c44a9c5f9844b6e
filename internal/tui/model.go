// Package tui renders the portfolio page in a terminal.
//
// The terminal is just another host for view.View: the root marker flips
// the lipgloss renderer between light and dark color resolution, and every
// state change re-renders the page into a scrolling viewport.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dev-Moura/portfolio/internal/content"
	"github.com/Dev-Moura/portfolio/internal/theme"
	"github.com/Dev-Moura/portfolio/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// termRoot is the terminal root marker.
type termRoot struct {
	r *lipgloss.Renderer
}

func (t termRoot) SetDarkPresentation(on bool) {
	t.r.SetHasDarkBackground(on)
}

// Model is the bubbletea model for the page.
type Model struct {
	view     *view.View
	resume   content.Resume
	renderer *lipgloss.Renderer
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	width    int
}

// New mounts a view whose dark marker drives renderer.
func New(resume content.Resume, renderer *lipgloss.Renderer) Model {
	vp := viewport.New(defaultWidth, defaultHeight-1)
	vp.KeyMap = viewportKeys()

	m := Model{
		view:     view.Mount(termRoot{r: renderer}),
		resume:   resume,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewport: vp,
		width:    defaultWidth,
	}
	m.refresh()
	return m
}

// State returns the view's current flags.
func (m Model) State() view.State {
	return m.view.State()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-1, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Blue):
			m.view.SelectTheme(theme.Blue)
		case key.Matches(msg, m.keys.Purple):
			m.view.SelectTheme(theme.Purple)
		case key.Matches(msg, m.keys.Orange):
			m.view.SelectTheme(theme.Orange)
		case key.Matches(msg, m.keys.Dark):
			m.view.ToggleDarkMode()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.viewport.View() + "\n" + m.help.View(m.keys)
}

func (m *Model) refresh() {
	page := view.Render(m.view.State(), m.resume)
	m.viewport.SetContent(RenderPage(page, m.renderer, m.width))
}

// Run starts the TUI on the terminal and blocks until the user quits.
func Run(resume content.Resume) error {
	renderer := lipgloss.NewRenderer(os.Stdout)
	p := tea.NewProgram(New(resume, renderer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Print renders the page once to w. The flags go through the same view
// operations a user would trigger.
func Print(w io.Writer, resume content.Resume, id theme.ID, dark bool, width int) error {
	renderer := lipgloss.NewRenderer(w)
	v := view.Mount(termRoot{r: renderer})
	v.SelectTheme(id)
	if dark {
		v.ToggleDarkMode()
	}

	_, err := io.WriteString(w, RenderPage(view.Render(v.State(), resume), renderer, width))
	return err
}
