package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Sahanajogi126/quizforge/internal/config"
	"github.com/Sahanajogi126/quizforge/internal/export"
	"github.com/Sahanajogi126/quizforge/internal/extract"
	"github.com/Sahanajogi126/quizforge/internal/pipeline"
	"github.com/Sahanajogi126/quizforge/internal/quizgen"
	"github.com/Sahanajogi126/quizforge/internal/rank"
	"github.com/Sahanajogi126/quizforge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a quiz from a document",
	Long:  "Generate reads a text or PDF file (or stdin when no file is given), ranks its sentences, and writes a quiz. The quiz is also saved to the local store for later play.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("types", "t", "", "Comma-separated question types (mcq, fill_blanks, true_false, short_answer; default all)")
	generateCmd.Flags().StringP("method", "m", "", "Ranking method: textrank, lexrank, tfidf")
	generateCmd.Flags().StringP("out", "o", "generated_questions.txt", "Output quiz text file")
	generateCmd.Flags().String("json", "", "Also write the quiz as validated JSON to this path")
	generateCmd.Flags().Bool("no-save", false, "Skip saving the quiz to the local store")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cmd, cfg)

	source := "stdin"
	var text string
	if len(args) == 1 {
		source = filepath.Base(args[0])
		text, err = extract.FromFile(args[0])
	} else {
		text, err = extract.FromReader(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	method := cfg.RankMethod
	if f, _ := cmd.Flags().GetString("method"); f != "" {
		method = f
	}
	typeSpec := cfg.QuestionTypes
	if f, _ := cmd.Flags().GetString("types"); f != "" {
		typeSpec = f
	}

	result, err := pipeline.Run(text, pipeline.Options{
		Method:         rank.ParseMethod(method),
		Types:          quizgen.ParseTypes(typeSpec),
		TopSentences:   cfg.TopSentences,
		BatchSize:      cfg.BatchSize,
		SmartSelection: cfg.SmartSelection,
		Log:            logger,
	})
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	if err := writeTextFile(outPath, result.Items); err != nil {
		return err
	}
	logger.Info("wrote quiz", "path", outPath, "questions", len(result.Items))

	quiz := &store.Quiz{
		ID:         uuid.NewString(),
		Source:     source,
		RankMethod: string(result.Method),
		Seed:       result.Seed,
		CreatedAt:  time.Now().UTC(),
		Items:      result.Items,
	}

	if jsonPath, _ := cmd.Flags().GetString("json"); jsonPath != "" {
		if err := writeJSONFile(jsonPath, quiz); err != nil {
			return err
		}
		logger.Info("wrote quiz JSON", "path", jsonPath)
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.QuizRepo().Save(cmd.Context(), quiz); err != nil {
			return fmt.Errorf("save quiz: %w", err)
		}
		logger.Info("saved quiz", "id", quiz.ID)
	}

	printSummary(cmd, result.Items)
	return nil
}

func writeTextFile(path string, items []quizgen.QuestionItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	return export.WriteText(f, items)
}

func writeJSONFile(path string, quiz *store.Quiz) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()

	return export.WriteJSON(f, export.QuizDocument{
		ID:        quiz.ID,
		Source:    quiz.Source,
		CreatedAt: quiz.CreatedAt,
		Seed:      quiz.Seed,
		Items:     quiz.Items,
	})
}

func printSummary(cmd *cobra.Command, items []quizgen.QuestionItem) {
	counts := make(map[quizgen.Type]int)
	for _, q := range items {
		counts[q.Type]++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d questions: %d MCQ | %d Fill | %d TF | %d Short\n",
		len(items),
		counts[quizgen.TypeMCQ], counts[quizgen.TypeFillBlank],
		counts[quizgen.TypeTrueFalse], counts[quizgen.TypeShortAnswer])
}
