package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Dev-Moura/portfolio/internal/content"
	"github.com/Dev-Moura/portfolio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names.
const (
	tmplIndex   = "index.html"
	tmplApp     = "app"
	tmplMissing = "missing.html"
)

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// PageData is what the page templates render.
type PageData struct {
	ViewID    string
	Base      string // URL prefix of the view's action endpoints
	RootClass string
	Page      view.Page
}

// NewPageData renders m's current state. Detached views get no action
// endpoints, so their controls render inert.
func NewPageData(m *Mounted, resume content.Resume) PageData {
	d := PageData{
		ViewID:    m.ID,
		RootClass: m.Root.Class(),
		Page:      view.Render(m.View.State(), resume),
	}
	if m.ID != "" {
		d.Base = "/views/" + m.ID
	}
	return d
}

// RenderDocument writes the full HTML document for m.
func RenderDocument(w io.Writer, tmpl *template.Template, m *Mounted, resume content.Resume) error {
	return tmpl.ExecuteTemplate(w, tmplIndex, NewPageData(m, resume))
}
