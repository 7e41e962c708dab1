package latex

import (
	"errors"
	"strings"
	"testing"
)

// stubTypesetter renders math as [src] or fails on demand.
type stubTypesetter struct {
	failOn map[string]error
}

func (s *stubTypesetter) Typeset(src string, display bool) (string, error) {
	if err, ok := s.failOn[src]; ok {
		return "", err
	}
	return "[" + src + "]", nil
}

func TestRender_PassesStrippedSourceToTypesetter(t *testing.T) {
	r := NewRenderer(&stubTypesetter{})
	out := r.Render("solve $x+1$ now")
	if !strings.Contains(out, "[x+1]") {
		t.Fatalf("expected typeset call with outer pair stripped, got %q", out)
	}
	if strings.Contains(out, "$") {
		t.Errorf("delimiters must not survive rendering: %q", out)
	}
}

func TestRender_HeuristicFailureFallsBackToLiteral(t *testing.T) {
	r := NewRenderer(&stubTypesetter{
		failOn: map[string]error{"a=2": errors.New("nope")},
	})
	out := r.Render("a=2")
	if out != "a=2" {
		t.Fatalf("heuristic failure must fall back to literal text, got %q", out)
	}
}

func TestRender_ExplicitFailureShowsErrorIndicator(t *testing.T) {
	r := NewRenderer(&stubTypesetter{
		failOn: map[string]error{"broken": errors.New("bad markup")},
	})
	out := r.Render("$broken$")
	if !strings.Contains(out, "broken") || !strings.Contains(out, "bad markup") {
		t.Fatalf("expected error indicator with source and reason, got %q", out)
	}
}

func TestRender_UnsupportedEnvironmentMessage(t *testing.T) {
	r := NewRenderer(&stubTypesetter{
		failOn: map[string]error{
			`\begin{tikz}\end{tikz}`: &ErrUnsupportedEnvironment{Env: "tikz"},
		},
	})
	out := r.Render(`$\begin{tikz}\end{tikz}$`)
	if !strings.Contains(out, "unsupported environment") {
		t.Fatalf("expected distinguished environment message, got %q", out)
	}
}

func TestRender_NilTypesetterDegradesToLiteral(t *testing.T) {
	r := NewRenderer(nil)
	out := r.Render("see $x^2$ here")
	if !strings.Contains(out, "x^2") {
		t.Fatalf("expected literal math source, got %q", out)
	}
}

func TestRender_FailureDoesNotAbortSurroundingText(t *testing.T) {
	r := NewRenderer(&stubTypesetter{
		failOn: map[string]error{"bad": errors.New("x")},
	})
	out := r.Render("before $bad$ after $x$ end")
	for _, want := range []string{"before ", " after ", "[x]", " end"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}

func TestDocumentBody_ExtractsInnerTextTrimmed(t *testing.T) {
	src := "\\documentclass{article}\n\\begin{document}\n  Solution: $x=1$.  \n\\end{document}\n"
	got := DocumentBody(src)
	if got != "Solution: $x=1$." {
		t.Fatalf("expected trimmed body, got %q", got)
	}
}

func TestDocumentBody_NoEnvironmentReturnsWholeTrimmed(t *testing.T) {
	got := DocumentBody("  just math $x$  ")
	if got != "just math $x$" {
		t.Fatalf("expected whole text trimmed, got %q", got)
	}
}
