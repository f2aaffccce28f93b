package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the full configuration surface. Every field has a default;
// an absent environment variable never errors.
type Config struct {
	// RankMethod selects the sentence-importance strategy:
	// textrank (default), lexrank, or tfidf.
	RankMethod string `koanf:"rank_method"`

	// TopSentences caps how many ranked sentences feed synthesis.
	TopSentences int `koanf:"top_sentences"`

	// BatchSize is the orchestrator's per-batch sentence count.
	BatchSize int `koanf:"batch_size"`

	// SmartSelection toggles quality-scored capping instead of a plain
	// head truncation.
	SmartSelection bool `koanf:"smart_selection"`

	// QuestionTypes is the requested type list ("all", or comma-separated
	// names/aliases).
	QuestionTypes string `koanf:"question_types"`

	// DBPath overrides the quiz store location.
	DBPath string `koanf:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		RankMethod:     "textrank",
		TopSentences:   20,
		BatchSize:      50,
		SmartSelection: true,
		QuestionTypes:  "all",
		LogLevel:       "info",
	}
}

// envKeys maps recognized environment variables to config paths.
var envKeys = map[string]string{
	"RANK_METHOD":     "rank_method",
	"TOP_SENTENCES":   "top_sentences",
	"BATCH_SIZE":      "batch_size",
	"SMART_SELECTION": "smart_selection",
	"QUESTION_TYPE":   "question_types",
	"QUIZFORGE_DB":    "db_path",
	"LOG_LEVEL":       "log_level",
}

// Load builds the configuration: struct defaults first, then overrides
// from the recognized environment variables.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envKeys[key]
			if !ok {
				return "", nil
			}
			if path == "smart_selection" {
				return path, parseToggle(value)
			}
			return path, value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// parseToggle accepts the common spellings of an on/off switch.
func parseToggle(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "on", "true", "yes":
		return true
	default:
		return false
	}
}
