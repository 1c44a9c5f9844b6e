package view

import (
	"strconv"
	"strings"

	"github.com/Dev-Moura/portfolio/internal/content"
	"github.com/Dev-Moura/portfolio/internal/icon"
	"github.com/Dev-Moura/portfolio/internal/theme"
)

// Page is the rendered tree for one state. Hosts turn it into markup or
// terminal output without consulting the View again.
type Page struct {
	Dark     bool
	Theme    theme.ID
	Tokens   theme.Tokens
	Swatches []Swatch
	Toggle   Toggle
	Header   Header
	Work     Section
	Study    Section
	Projects []ProjectCard
	Skills   []SkillCard
}

// Swatch is one theme picker button.
type Swatch struct {
	Theme  theme.ID
	Class  string
	Active bool
}

// Toggle is the dark-mode button. Its glyph shows the mode it switches to.
type Toggle struct {
	Glyph icon.Glyph
	Label string
}

// Header is the profile block at the top of the page.
type Header struct {
	Name       string
	Title      string
	TitleClass string
	Links      []Link
	About      string
}

// Link is a contact link with its icon.
type Link struct {
	Label string
	Href  string
	Glyph icon.Glyph
}

// Section is a titled card of dated entries.
type Section struct {
	Title   string
	Entries []Entry
}

// Entry is one job or education record.
type Entry struct {
	Heading  string
	Period   string
	Subtitle string
	Summary  string
	Bullets  []string
	Badges   []Badge
}

// ProjectCard is one project with its technology badges.
type ProjectCard struct {
	Title       string
	Description string
	Badges      []Badge
}

// Badge is a technology label.
type Badge struct {
	Label string
	Class string
}

// SkillCard is a titled group of skill bars.
type SkillCard struct {
	Title string
	Bars  []SkillBar
}

// SkillBar is one skill with its fill.
type SkillBar struct {
	Name  string
	Level int
	Class string
}

// Width is the CSS width of the bar fill, e.g. "80%".
func (b SkillBar) Width() string {
	return strconv.Itoa(b.Level) + "%"
}

// Render projects state and resume into a Page. It has no side effects.
func Render(state State, resume content.Resume) Page {
	tok := theme.Lookup(state.ActiveTheme)

	p := Page{
		Dark:   state.DarkMode,
		Theme:  state.ActiveTheme,
		Tokens: tok,
		Toggle: Toggle{Glyph: icon.Moon, Label: "Toggle"},
		Header: renderHeader(resume.Profile, tok),
		Work:   Section{Title: "Work Experience"},
		Study:  Section{Title: "Education"},
	}
	if state.DarkMode {
		p.Toggle.Glyph = icon.Sun
	}

	for _, id := range theme.All() {
		p.Swatches = append(p.Swatches, Swatch{
			Theme:  id,
			Class:  theme.Lookup(id).Swatch,
			Active: id == state.ActiveTheme,
		})
	}

	for _, j := range resume.Jobs {
		p.Work.Entries = append(p.Work.Entries, Entry{
			Heading:  j.Company,
			Period:   j.Period,
			Subtitle: j.Role,
			Bullets:  j.Bullets,
			Badges:   badges(j.Techs, tok.Badge),
		})
	}

	for _, e := range resume.Education {
		p.Study.Entries = append(p.Study.Entries, Entry{
			Heading: e.Institution,
			Period:  e.Period,
			Summary: prose(e.Summary),
		})
	}

	for _, pr := range resume.Projects {
		p.Projects = append(p.Projects, ProjectCard{
			Title:       pr.Title,
			Description: prose(pr.Description),
			Badges:      badges(pr.Techs, tok.Badge),
		})
	}

	for _, g := range resume.SkillGroups {
		card := SkillCard{Title: g.Title}
		for _, s := range g.Skills {
			card.Bars = append(card.Bars, SkillBar{
				Name:  s.Name,
				Level: clampLevel(s.Level),
				Class: tok.Bar,
			})
		}
		p.Skills = append(p.Skills, card)
	}

	return p
}

func renderHeader(pr content.Profile, tok theme.Tokens) Header {
	return Header{
		Name:       pr.Name,
		Title:      pr.Title,
		TitleClass: tok.Primary,
		About:      prose(pr.About),
		Links: []Link{
			{Label: pr.Email.Label, Href: pr.Email.Href, Glyph: icon.Mail},
			{Label: pr.GitHub.Label, Href: pr.GitHub.Href, Glyph: icon.GitHub},
			{Label: pr.LinkedIn.Label, Href: pr.LinkedIn.Href, Glyph: icon.LinkedIn},
		},
	}
}

// badges keeps the supplied order and any duplicates.
func badges(techs []string, class string) []Badge {
	if len(techs) == 0 {
		return nil
	}
	out := make([]Badge, len(techs))
	for i, t := range techs {
		out[i] = Badge{Label: t, Class: class}
	}
	return out
}

// prose collapses the indentation carried by multi-line literals.
func prose(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func clampLevel(l int) int {
	return min(max(l, 0), 100)
}
