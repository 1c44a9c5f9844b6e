package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"

	"github.com/Dev-Moura/portfolio/internal/config"
	"github.com/Dev-Moura/portfolio/internal/content"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfg     *config.Config
	resume  content.Resume
	logger  *slog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio page",
	Long: `portfolio serves a single résumé page with a light/dark toggle and
three accent themes.

Running portfolio without a subcommand starts the web server.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		setupLogger()

		resume = content.Default()
		return resume.Validate()
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogger() {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	// stderr keeps stdout clean for the render command
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
