package question

import (
	"os"
	"strconv"
)

// Config holds question extraction settings.
type Config struct {
	// DefaultTotalMarks is substituted when the extractor cannot infer
	// a mark total from the source image. A product policy, not an
	// invariant — hence configurable.
	DefaultTotalMarks float64

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for question extraction.
func DefaultConfig() Config {
	return Config{
		DefaultTotalMarks: 10,
		MaxTokens:         1024,
		Temperature:       0.2,
	}
}

// ConfigFromEnv applies GRADEPAD_DEFAULT_MARKS on top of defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("GRADEPAD_DEFAULT_MARKS"); v != "" {
		if marks, err := strconv.ParseFloat(v, 64); err == nil && marks > 0 {
			cfg.DefaultTotalMarks = marks
		}
	}
	return cfg
}
