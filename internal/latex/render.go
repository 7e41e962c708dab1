package latex

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradepad/internal/ui/theme"
)

var (
	mathStyle    = lipgloss.NewStyle().Foreground(theme.Secondary)
	displayStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(theme.Error)
	litStyle     = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// Renderer applies the segmentation passes and the fallback policy,
// delegating actual typesetting to a Typesetter. A nil Typesetter
// degrades every math segment to literal code-styled text.
type Renderer struct {
	ts Typesetter
}

// NewRenderer creates a renderer over the given typesetter.
func NewRenderer(ts Typesetter) *Renderer {
	return &Renderer{ts: ts}
}

// Render segments mixed text and renders each math span. Render
// failures never abort the whole text: explicit-delimiter failures
// become inline error indicators, heuristic guesses fall back to the
// literal source.
func (r *Renderer) Render(text string) string {
	var b strings.Builder
	for _, seg := range Split(text) {
		b.WriteString(r.renderSegment(seg))
	}
	return b.String()
}

func (r *Renderer) renderSegment(seg Segment) string {
	if seg.Kind == KindText {
		return seg.Src
	}

	if r.ts == nil {
		return litStyle.Render(seg.Src)
	}

	out, err := r.ts.Typeset(seg.Src, seg.Kind == KindDisplay)
	if err == nil {
		if seg.Kind == KindDisplay {
			return displayStyle.Render(out)
		}
		return mathStyle.Render(out)
	}

	// Heuristic guess that doesn't typeset was probably prose after all.
	if !seg.Explicit {
		return seg.Src
	}

	var envErr *ErrUnsupportedEnvironment
	if errors.As(err, &envErr) {
		return errStyle.Render(fmt.Sprintf("[%s: %s]", seg.Src, envErr.Error()))
	}
	return errStyle.Render(fmt.Sprintf("[render error in %q: %v]", seg.Src, err))
}

var documentBodyRe = regexp.MustCompile(`(?s)\\begin\{document\}(.*?)\\end\{document\}`)

// DocumentBody extracts the trimmed body between \begin{document} and
// \end{document}. Without a document environment the whole text is
// returned trimmed, so partial transcriptions still preview.
func DocumentBody(src string) string {
	if m := documentBodyRe.FindStringSubmatch(src); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(src)
}

// RenderDocument previews a complete LaTeX document: the body is
// extracted and then rendered with the same segmentation.
func (r *Renderer) RenderDocument(src string) string {
	return r.Render(DocumentBody(src))
}
