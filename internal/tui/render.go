package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dev-Moura/portfolio/internal/theme"
	"github.com/Dev-Moura/portfolio/internal/view"
)

const (
	barCells    = 24
	minWidth    = 40
	barFull     = "█"
	barEmpty    = "░"
	swatchGlyph = "●"
)

var (
	textColor  = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"}
	mutedColor = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	trackColor = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	ruleColor  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

// styles are resolved against one renderer, so adaptive colors follow
// whatever dark flag the root marker last set on it.
type styles struct {
	name    lipgloss.Style
	accent  lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
	badge   lipgloss.Style
	bar     lipgloss.Style
	track   lipgloss.Style
	body    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, id theme.ID, width int) styles {
	pal := theme.PaletteFor(id)
	heading := r.NewStyle().Bold(true).Foreground(textColor).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(ruleColor).
		Width(width).MarginTop(1)

	return styles{
		name:    r.NewStyle().Bold(true).Foreground(textColor),
		accent:  r.NewStyle().Bold(true).Foreground(pal.Primary),
		text:    r.NewStyle().Foreground(textColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		heading: heading,
		badge:   r.NewStyle().Foreground(pal.BadgeFg).Background(pal.BadgeBg).Padding(0, 1),
		bar:     r.NewStyle().Foreground(pal.Bar),
		track:   r.NewStyle().Foreground(trackColor),
		body:    r.NewStyle().Foreground(textColor).Width(width),
	}
}

// RenderPage draws p for a terminal of the given width.
func RenderPage(p view.Page, r *lipgloss.Renderer, width int) string {
	width = max(width, minWidth)
	st := newStyles(r, p.Theme, width)

	var b strings.Builder
	b.WriteString(topBar(p, r, st))
	b.WriteString("\n\n")

	h := p.Header
	b.WriteString(st.name.Render(h.Name) + "\n")
	b.WriteString(st.accent.Render(h.Title) + "\n\n")
	links := make([]string, 0, len(h.Links))
	for _, l := range h.Links {
		links = append(links, st.text.Render(l.Glyph.Rune()+" "+l.Label)+" "+st.muted.Render(l.Href))
	}
	b.WriteString(strings.Join(links, "\n") + "\n")
	if h.About != "" {
		b.WriteString("\n" + st.body.Render(h.About) + "\n")
	}

	writeSection(&b, p.Work, st)
	writeSection(&b, p.Study, st)

	b.WriteString(st.heading.Render("Projects") + "\n")
	for _, pc := range p.Projects {
		b.WriteString(st.text.Bold(true).Render(pc.Title) + "\n")
		if pc.Description != "" {
			b.WriteString(st.body.Render(pc.Description) + "\n")
		}
		b.WriteString(badges(pc.Badges, st) + "\n\n")
	}

	for _, card := range p.Skills {
		b.WriteString(st.heading.Render(card.Title) + "\n")
		for _, bar := range card.Bars {
			b.WriteString(st.text.Render(bar.Name) + "\n")
			b.WriteString(skillBar(bar.Level, st) + " " + st.muted.Render(bar.Width()) + "\n")
		}
	}

	return b.String()
}

func topBar(p view.Page, r *lipgloss.Renderer, st styles) string {
	parts := make([]string, 0, len(p.Swatches)+1)
	for i, sw := range p.Swatches {
		dot := r.NewStyle().Foreground(theme.PaletteFor(sw.Theme).Swatch).Render(swatchGlyph)
		if sw.Active {
			dot = "[" + dot + "]"
		} else {
			dot = " " + dot + " "
		}
		parts = append(parts, fmt.Sprintf("%d%s", i+1, dot))
	}
	toggle := st.muted.Render(fmt.Sprintf("(d) %s %s", p.Toggle.Glyph.Rune(), p.Toggle.Label))
	return strings.Join(parts, " ") + "   " + toggle
}

func writeSection(b *strings.Builder, s view.Section, st styles) {
	b.WriteString(st.heading.Render(s.Title) + "\n")
	for i, e := range s.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(st.name.Render(e.Heading) + "  " + st.muted.Render(e.Period) + "\n")
		if e.Subtitle != "" {
			b.WriteString(st.text.Render(e.Subtitle) + "\n")
		}
		if e.Summary != "" {
			b.WriteString(st.body.Render(e.Summary) + "\n")
		}
		for _, bullet := range e.Bullets {
			b.WriteString(st.body.Render("• "+bullet) + "\n")
		}
		if len(e.Badges) > 0 {
			b.WriteString(badges(e.Badges, st) + "\n")
		}
	}
}

func badges(bs []view.Badge, st styles) string {
	out := make([]string, len(bs))
	for i, bd := range bs {
		out[i] = st.badge.Render(bd.Label)
	}
	return strings.Join(out, " ")
}

func skillBar(level int, st styles) string {
	n := filledCells(level, barCells)
	return st.bar.Render(strings.Repeat(barFull, n)) + st.track.Render(strings.Repeat(barEmpty, barCells-n))
}

// filledCells maps a 0-100 level onto cells, rounding to the nearest cell.
func filledCells(level, cells int) int {
	level = min(max(level, 0), 100)
	return (level*cells + 50) / 100
}
