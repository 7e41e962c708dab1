package latex

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradepad/internal/ui/theme"
)

var (
	cmdStyle     = lipgloss.NewStyle().Foreground(theme.Primary)
	delimStyle   = lipgloss.NewStyle().Foreground(theme.Accent)
	braceStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
	commentStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
)

// highlightRe tokenizes a source line for display. Order matters:
// comments swallow the rest of the line, commands before single chars.
var highlightRe = regexp.MustCompile(`%[^\n]*|\\[a-zA-Z]+\*?|\\\[|\\\]|\\\(|\\\)|\$\$?|[{}]`)

// Highlight applies LaTeX syntax colors to a single source line.
// It is purely additive: stripping the ANSI sequences yields the
// input unchanged, so the editor can overlay it on textarea content.
func Highlight(line string) string {
	if idx := strings.Index(line, "%"); idx == 0 {
		return commentStyle.Render(line)
	}

	return highlightRe.ReplaceAllStringFunc(line, func(tok string) string {
		switch {
		case strings.HasPrefix(tok, "%"):
			return commentStyle.Render(tok)
		case tok == "{" || tok == "}":
			return braceStyle.Render(tok)
		case tok == "$" || tok == "$$" || tok == `\[` || tok == `\]` || tok == `\(` || tok == `\)`:
			return delimStyle.Render(tok)
		default:
			return cmdStyle.Render(tok)
		}
	})
}
