package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeTitle turns a question title into a filesystem-safe base name.
func SanitizeTitle(title string) string {
	s := unsafeChars.ReplaceAllString(strings.TrimSpace(title), "_")
	s = strings.Trim(s, "_.")
	if s == "" {
		return "submission"
	}
	return s
}

// Export writes the LaTeX source to <sanitized-title>.tex in dir and
// returns the written path.
func Export(dir, title, source string) (string, error) {
	path := filepath.Join(dir, SanitizeTitle(title)+".tex")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("export %q: %w", path, err)
	}
	return path, nil
}
