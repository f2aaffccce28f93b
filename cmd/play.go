package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sahanajogi126/quizforge/internal/config"
	"github.com/Sahanajogi126/quizforge/internal/store"
	"github.com/Sahanajogi126/quizforge/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play [quiz-id]",
	Short: "Take a stored quiz in the terminal",
	Long:  "Play runs an interactive session over a stored quiz. With no argument the most recently generated quiz is used.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.QuizRepo()
		var quiz *store.Quiz
		if len(args) == 1 {
			quiz, err = repo.Get(cmd.Context(), args[0])
		} else {
			quiz, err = repo.Latest(cmd.Context())
		}
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no quiz found; run 'quizforge generate' first")
		}
		if err != nil {
			return err
		}

		return ui.Play(quiz.Items)
	},
}
