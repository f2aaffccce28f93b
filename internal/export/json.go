package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Sahanajogi126/quizforge/internal/quizgen"
)

// QuizDocument is the JSON export envelope for one generated quiz.
type QuizDocument struct {
	ID        string                 `json:"id"`
	Source    string                 `json:"source"`
	CreatedAt time.Time              `json:"created_at"`
	Seed      int64                  `json:"seed"`
	Items     []quizgen.QuestionItem `json:"items"`
}

// quizSchemaDef is the JSON Schema every exported quiz must satisfy.
var quizSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"id", "created_at", "items"},
	"properties": map[string]any{
		"id":         map[string]any{"type": "string", "minLength": 1},
		"source":     map[string]any{"type": "string"},
		"created_at": map[string]any{"type": "string"},
		"seed":       map[string]any{"type": "integer"},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"type", "question", "answer"},
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"mcq", "fill_blanks", "true_false", "short_answer"},
					},
					"question": map[string]any{"type": "string", "minLength": 1},
					"answer":   map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 4,
						"maxItems": 4,
					},
				},
			},
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func quizSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		defBytes, err := json.Marshal(quizSchemaDef)
		if err != nil {
			schemaErr = fmt.Errorf("marshal quiz schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			schemaErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("quiz.json", doc); err != nil {
			schemaErr = fmt.Errorf("add quiz schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("quiz.json")
	})
	return compiledSchema, schemaErr
}

// WriteJSON validates doc against the quiz schema and writes it out
// indented. Validation failures mean a synthesizer bug; nothing invalid
// is ever written.
func WriteJSON(w io.Writer, doc QuizDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal quiz: %w", err)
	}

	schema, err := quizSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("reparse quiz: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("quiz failed schema validation: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
