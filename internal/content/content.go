// Package content holds the résumé records rendered on the page.
//
// Everything here is compiled into the binary; there is no loading or
// editing at runtime. Validate checks the records once at start-up.
package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Link is one of the profile contact links.
type Link struct {
	Label string `validate:"required"`
	Href  string `validate:"required,uri"`
}

// Profile is the page header.
type Profile struct {
	Name     string `validate:"required"`
	Title    string `validate:"required"`
	Email    Link
	GitHub   Link
	LinkedIn Link
	About    string
}

// Job is one work-experience entry.
type Job struct {
	Company string   `validate:"required"`
	Period  string   `validate:"required"`
	Role    string   `validate:"required"`
	Bullets []string `validate:"dive,required"`
	// Techs are shown as badges in the order given. Duplicates are kept.
	Techs []string
}

// Education is one education entry.
type Education struct {
	Institution string `validate:"required"`
	Period      string `validate:"required"`
	Summary     string
}

// Project is one project card.
type Project struct {
	Title       string `validate:"required"`
	Description string
	Techs       []string
}

// Skill is one skill bar. Level is a percentage.
type Skill struct {
	Name  string `validate:"required"`
	Level int    `validate:"gte=0,lte=100"`
}

// SkillGroup is a titled card of skill bars.
type SkillGroup struct {
	Title  string  `validate:"required"`
	Skills []Skill `validate:"dive"`
}

// Resume is everything the page shows.
type Resume struct {
	Profile     Profile
	Jobs        []Job        `validate:"dive"`
	Education   []Education  `validate:"dive"`
	Projects    []Project    `validate:"dive"`
	SkillGroups []SkillGroup `validate:"dive"`
}

var validate = validator.New()

// Validate reports the first set of field errors in r, if any.
func (r Resume) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid resume content: %w", err)
	}
	return nil
}

// Default returns the résumé compiled into the binary.
func Default() Resume {
	return Resume{
		Profile: Profile{
			Name:     "Michael Moura",
			Title:    "Software Engineer",
			Email:    Link{Label: "Email", Href: "mailto:michael.moura72@hotmail.com"},
			GitHub:   Link{Label: "GitHub", Href: "https://github.com/Dev-Moura"},
			LinkedIn: Link{Label: "LinkedIn", Href: "https://www.linkedin.com/in/michael-de-souza/"},
			About:    AboutMe,
		},
		Jobs: []Job{
			{
				Company: "BNDES",
				Period:  "12/2024 — Present",
				Role:    "Software Development Intern",
				Bullets: []string{
					"Colaboração em Design Sprint, contribuindo e acompanhando para definição de problema, ideação, prototipação com miro e validação de soluções com stakeholders",
					"Automatização de processos internos com Python e Playwright reduzindo tarefas manuais e aumentando eficiência operacional",
					"Desenvolvimento de sistemas backoffice para suporte às operações do RH",
					"Aplicação de boas práticas de versionamento (Git/GitLab)",
					"Participação ativa em ciclos de testes manuais e automatizados",
				},
				Techs: []string{"Python", "Playwright", "API REST", "Html5/Css3", "Copilot"},
			},
			{
				Company: "MGI Technogin",
				Period:  "10/2023 — 04/2024",
				Role:    "Typist Freelancer",
				Bullets: []string{
					"Atuei também na preservação e organização de documentos físicos, assegurando a integridade do acervo documental.",
					"Atuei como digitador, realizando a transcrição e inserção de dados contratuais no sistema da empresa.",
					"Responsável por alimentar o banco de dados e garantir a consistência das informações registradas.",
				},
			},
		},
		Education: []Education{
			{
				Institution: "UNIÁMERICA - Engenharia de Software",
				Period:      "04/2024 - 02/2027",
				Summary:     EducationSummary,
			},
		},
		Projects: []Project{
			{
				Title:       "Condominium Management System",
				Description: CondominiumProject,
				Techs:       []string{"Java", "Spring Boot", "MySQL"},
			},
			{
				Title:       "Personal Portfolio",
				Description: PortfolioProject,
				Techs:       []string{"Go", "Gin", "HTMX", "Tailwind"},
			},
		},
		SkillGroups: []SkillGroup{
			{
				Title: "Programming Languages",
				Skills: []Skill{
					{"Java", 80},
					{"TypeScript", 60},
					{"Python", 70},
					{"JavaScript", 80},
					{"Dart", 40},
					{"SQL", 50},
					{"NoSQL", 50},
					{"Git / Git-lab", 80},
				},
			},
			{
				Title: "FrameWorks",
				Skills: []Skill{
					{"Spring / Spring Boot / hibernate", 80},
					{"React.js / Next.js / Nest.js", 70},
					{"Flutter", 40},
					{"Pandas", 40},
				},
			},
			{
				Title: "Language",
				Skills: []Skill{
					{"Portugues", 100},
					{"Inglesh", 50},
				},
			},
		},
	}
}
