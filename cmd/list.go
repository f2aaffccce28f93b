package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sahanajogi126/quizforge/internal/config"
	"github.com/Sahanajogi126/quizforge/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored quizzes",
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

		limit, _ := cmd.Flags().GetInt("limit")
		summaries, err := st.QuizRepo().List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No quizzes stored yet. Run 'quizforge generate' first.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-36s  %-20s  %-10s  %s\n", "ID", "CREATED", "QUESTIONS", "SOURCE")
		for _, s := range summaries {
			fmt.Fprintf(w, "%-36s  %-20s  %-10d  %s\n",
				s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.ItemCount, s.Source)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Int("limit", 20, "Maximum number of quizzes to list (0 = all)")
}
