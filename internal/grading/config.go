package grading

// Config holds grading settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for grading.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.2,
	}
}
