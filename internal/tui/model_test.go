package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-Moura/portfolio/internal/content"
	"github.com/Dev-Moura/portfolio/internal/theme"
	"github.com/Dev-Moura/portfolio/internal/view"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func newModel() (Model, *lipgloss.Renderer) {
	r := lipgloss.NewRenderer(io.Discard)
	return New(content.Default(), r), r
}

func TestNew_Defaults(t *testing.T) {
	m, r := newModel()

	assert.Equal(t, view.State{}, m.State())
	assert.False(t, r.HasDarkBackground())
	assert.Contains(t, m.View(), "Michael Moura")
}

func TestUpdate_ToggleDark(t *testing.T) {
	m, r := newModel()

	m = press(t, m, runes("d"))
	assert.True(t, m.State().DarkMode)
	assert.True(t, r.HasDarkBackground())

	m = press(t, m, runes("d"))
	assert.False(t, m.State().DarkMode)
	assert.False(t, r.HasDarkBackground())
}

func TestUpdate_SelectTheme(t *testing.T) {
	tests := []struct {
		key  string
		want theme.ID
	}{
		{"2", theme.Purple},
		{"p", theme.Purple},
		{"3", theme.Orange},
		{"o", theme.Orange},
		{"1", theme.Blue},
		{"b", theme.Blue},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, r := newModel()
			if tt.want == theme.Blue {
				m = press(t, m, runes("3"))
			}

			m = press(t, m, runes(tt.key))

			assert.Equal(t, tt.want, m.State().ActiveTheme)
			assert.False(t, m.State().DarkMode)
			assert.False(t, r.HasDarkBackground())
		})
	}
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_ScrollKeepsState(t *testing.T) {
	m, _ := newModel()
	m = press(t, m, runes("2"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, theme.Purple, m.State().ActiveTheme)
}

func TestUpdate_Resize(t *testing.T) {
	m, _ := newModel()

	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 39, m.viewport.Height)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _ := newModel()
	assert.NotContains(t, m.View(), "purple theme")

	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "purple theme")
}

func TestRenderPage_Content(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	page := view.Render(view.State{ActiveTheme: theme.Orange}, content.Default())

	out := RenderPage(page, r, 100)

	for _, want := range []string{
		"Michael Moura", "Software Engineer", "mailto:michael.moura72@hotmail.com",
		"Work Experience", "Education", "Projects", "Programming Languages",
		"BNDES", "Condominium Management System", "80%", "☾ Toggle",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "3[", "active swatch is bracketed")
}

func TestRenderPage_DarkGlyph(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	page := view.Render(view.State{DarkMode: true}, content.Default())

	assert.Contains(t, RenderPage(page, r, 80), "☀ Toggle")
}

func TestRenderPage_BadgeOrder(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	resume := content.Resume{Projects: []content.Project{{Title: "p", Techs: []string{"Zig", "Go", "Zig"}}}}

	out := RenderPage(view.Render(view.State{}, resume), r, 80)

	first := strings.Index(out, "Zig")
	second := strings.Index(out, "Go")
	last := strings.LastIndex(out, "Zig")
	assert.True(t, first < second && second < last, "badges keep order and duplicates")
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{0, 0},
		{50, 12},
		{80, 19},
		{100, 24},
		{-10, 0},
		{150, 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, filledCells(tt.level, barCells), "level %d", tt.level)
	}
}

func TestFilledCells_Monotonic(t *testing.T) {
	prev := 0
	for l := 0; l <= 100; l++ {
		n := filledCells(l, barCells)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestPrint(t *testing.T) {
	var buf strings.Builder

	require.NoError(t, Print(&buf, content.Default(), theme.Purple, true, 90))

	out := buf.String()
	assert.Contains(t, out, "Michael Moura")
	assert.Contains(t, out, "2[", "purple swatch is active")
	assert.Contains(t, out, "☀ Toggle")
}
