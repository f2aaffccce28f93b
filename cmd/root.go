package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Sahanajogi126/quizforge/internal/config"
	"github.com/Sahanajogi126/quizforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Turn documents into graded quizzes",
	Long:  "Quizforge ranks the important sentences of a document and synthesizes multiple-choice, fill-in-the-blank, true/false and short-answer questions from them.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config/env value, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// newLogger builds the CLI logger, preferring the --log-level flag over
// the configured level.
func newLogger(cmd *cobra.Command, cfg config.Config) *log.Logger {
	level := cfg.LogLevel
	if f, _ := cmd.Flags().GetString("log-level"); f != "" {
		level = f
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}
