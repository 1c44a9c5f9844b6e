package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Dev-Moura/portfolio/internal/content"
	"github.com/Dev-Moura/portfolio/internal/theme"
	"github.com/Dev-Moura/portfolio/internal/tui"
	"github.com/Dev-Moura/portfolio/internal/web"
)

var renderOpts struct {
	theme  string
	dark   bool
	format string
	width  int
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page once to stdout",
	Long: `Render the page once to stdout, as a static HTML document or as
terminal text. The controls in a static HTML export are inert.`,
	Example: `  portfolio render --theme purple --dark > index.html
  portfolio render --format text --theme orange`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := theme.Parse(renderOpts.theme)
		if err != nil {
			return err
		}
		return renderPage(cmd.OutOrStdout(), resume, id, renderOpts.dark, renderOpts.format, renderOpts.width)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderOpts.theme, "theme", theme.Blue.String(), "Accent theme (blue, purple, orange)")
	renderCmd.Flags().BoolVar(&renderOpts.dark, "dark", false, "Render in dark mode")
	renderCmd.Flags().StringVarP(&renderOpts.format, "format", "f", "html", "Output format (html, text)")
	renderCmd.Flags().IntVar(&renderOpts.width, "width", 80, "Line width for text output")
}

func renderPage(w io.Writer, r content.Resume, id theme.ID, dark bool, format string, width int) error {
	switch format {
	case "html":
		tmpl, err := web.LoadTemplates()
		if err != nil {
			return err
		}
		m := web.Detached()
		m.View.SelectTheme(id)
		if dark {
			m.View.ToggleDarkMode()
		}
		return web.RenderDocument(w, tmpl, m, r)
	case "text":
		return tui.Print(w, r, id, dark, width)
	default:
		return fmt.Errorf("unknown format %q (want html or text)", format)
	}
}
