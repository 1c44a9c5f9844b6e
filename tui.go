package main

import (
	"github.com/spf13/cobra"

	"github.com/Dev-Moura/portfolio/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the page in the terminal",
	Long: `Browse the page in the terminal.

Key bindings:
  1/b, 2/p, 3/o   Blue, purple, orange theme
  d               Toggle dark mode
  j/k, ↑/↓        Scroll
  ?               Show help
  q               Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(resume)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
