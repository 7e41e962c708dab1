package transcribe

// Config holds transcription settings.
type Config struct {
	RefineMaxTokens   int
	DocumentMaxTokens int
	SolutionMaxTokens int
	Temperature       float64
}

// DefaultConfig returns sensible defaults for transcription.
func DefaultConfig() Config {
	return Config{
		RefineMaxTokens:   2048,
		DocumentMaxTokens: 8192,
		SolutionMaxTokens: 4096,
		Temperature:       0.1,
	}
}
