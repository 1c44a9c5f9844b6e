package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-Moura/portfolio/internal/content"
	"github.com/Dev-Moura/portfolio/internal/icon"
	"github.com/Dev-Moura/portfolio/internal/theme"
)

func TestRender_UsesActiveTokens(t *testing.T) {
	resume := content.Default()

	for _, id := range theme.All() {
		t.Run(id.String(), func(t *testing.T) {
			tok := theme.Lookup(id)
			p := Render(State{ActiveTheme: id}, resume)

			assert.Equal(t, id, p.Theme)
			assert.Equal(t, tok.Primary, p.Header.TitleClass)

			for _, card := range p.Skills {
				for _, bar := range card.Bars {
					assert.Equal(t, tok.Bar, bar.Class)
				}
			}
			for _, pc := range p.Projects {
				for _, b := range pc.Badges {
					assert.Equal(t, tok.Badge, b.Class)
				}
			}
			for _, e := range p.Work.Entries {
				for _, b := range e.Badges {
					assert.Equal(t, tok.Badge, b.Class)
				}
			}
		})
	}
}

func TestRender_Swatches(t *testing.T) {
	p := Render(State{ActiveTheme: theme.Purple}, content.Default())

	require.Len(t, p.Swatches, 3)
	assert.Equal(t, theme.Blue, p.Swatches[0].Theme)
	assert.Equal(t, "bg-orange-500", p.Swatches[2].Class)

	var active []theme.ID
	for _, s := range p.Swatches {
		if s.Active {
			active = append(active, s.Theme)
		}
	}
	assert.Equal(t, []theme.ID{theme.Purple}, active)
}

func TestRender_ToggleGlyph(t *testing.T) {
	resume := content.Default()

	light := Render(State{}, resume)
	assert.False(t, light.Dark)
	assert.Equal(t, icon.Moon, light.Toggle.Glyph)

	dark := Render(State{DarkMode: true}, resume)
	assert.True(t, dark.Dark)
	assert.Equal(t, icon.Sun, dark.Toggle.Glyph)
}

func TestRender_SkillWidth(t *testing.T) {
	resume := content.Resume{
		SkillGroups: []content.SkillGroup{{
			Title: "Levels",
			Skills: []content.Skill{
				{Name: "none", Level: 0},
				{Name: "some", Level: 37},
				{Name: "all", Level: 100},
			},
		}},
	}

	p := Render(State{}, resume)

	require.Len(t, p.Skills, 1)
	bars := p.Skills[0].Bars
	assert.Equal(t, "0%", bars[0].Width())
	assert.Equal(t, "37%", bars[1].Width())
	assert.Equal(t, "100%", bars[2].Width())
}

func TestRender_SkillWidthClamped(t *testing.T) {
	resume := content.Resume{
		SkillGroups: []content.SkillGroup{{
			Title:  "Out of range",
			Skills: []content.Skill{{Name: "low", Level: -5}, {Name: "high", Level: 140}},
		}},
	}

	bars := Render(State{}, resume).Skills[0].Bars
	assert.Equal(t, "0%", bars[0].Width())
	assert.Equal(t, "100%", bars[1].Width())
}

func TestRender_TechOrderAndDuplicates(t *testing.T) {
	resume := content.Resume{
		Projects: []content.Project{{
			Title: "p",
			Techs: []string{"Go", "SQL", "Go", "Alpine"},
		}},
	}

	p := Render(State{}, resume)

	var labels []string
	for _, b := range p.Projects[0].Badges {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Go", "SQL", "Go", "Alpine"}, labels)
}

func TestRender_DefaultContent(t *testing.T) {
	p := Render(State{}, content.Default())

	assert.Equal(t, "Michael Moura", p.Header.Name)
	require.Len(t, p.Header.Links, 3)
	assert.Equal(t, icon.Mail, p.Header.Links[0].Glyph)
	assert.Equal(t, "Work Experience", p.Work.Title)
	assert.Len(t, p.Work.Entries, 2)
	assert.Equal(t, "Education", p.Study.Title)
	assert.Len(t, p.Projects, 2)
	assert.Len(t, p.Skills, 3)
	assert.NotContains(t, p.Header.About, "\t")
}

func TestRender_Pure(t *testing.T) {
	resume := content.Default()
	state := State{DarkMode: true, ActiveTheme: theme.Orange}

	assert.Equal(t, Render(state, resume), Render(state, resume))
}
