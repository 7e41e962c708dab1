package latex

import (
	"errors"
	"testing"
)

func TestTerminal_BasicConversions(t *testing.T) {
	ts := NewTerminal()
	tests := []struct {
		src  string
		want string
	}{
		{`x^2`, "x²"},
		{`a_1`, "a₁"},
		{`\frac{1}{2}`, "(1)/(2)"},
		{`\sqrt{2}`, "√(2)"},
		{`\pi r^2`, "π r²"},
		{`x \le y`, "x ≤ y"},
		{`a \cdot b`, "a · b"},
		{`\alpha + \beta`, "α + β"},
		{`x \to \infty`, "x → ∞"},
	}
	for _, tt := range tests {
		got, err := ts.Typeset(tt.src, false)
		if err != nil {
			t.Errorf("Typeset(%q) returned error: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Typeset(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestTerminal_BraceSuperscript(t *testing.T) {
	ts := NewTerminal()
	got, err := ts.Typeset(`x^{10}`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "x¹⁰" {
		t.Errorf("expected x¹⁰, got %q", got)
	}
}

func TestTerminal_NonConvertibleScriptKeepsMarker(t *testing.T) {
	ts := NewTerminal()
	tests := []struct {
		src  string
		want string
	}{
		{`e^{xy}`, "e^(xy)"},
		{`a_{jk}`, "a_(jk)"},
		{`e^{xy} + z^2`, "e^(xy) + z²"},
	}
	for _, tt := range tests {
		got, err := ts.Typeset(tt.src, false)
		if err != nil {
			t.Errorf("Typeset(%q) returned error: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Typeset(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestTerminal_NestedFractions(t *testing.T) {
	ts := NewTerminal()
	got, err := ts.Typeset(`\frac{\frac{1}{2}}{3}`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "((1)/(2))/(3)" {
		t.Errorf("unexpected nested fraction output: %q", got)
	}
}

func TestTerminal_UnknownCommandFails(t *testing.T) {
	ts := NewTerminal()
	if _, err := ts.Typeset(`\notacommand{x}`, false); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestTerminal_UnbalancedBracesFail(t *testing.T) {
	ts := NewTerminal()
	if _, err := ts.Typeset(`\sqrt{2`, false); err == nil {
		t.Fatal("expected error for unbalanced braces")
	}
}

func TestTerminal_UnsupportedEnvironmentDistinguished(t *testing.T) {
	ts := NewTerminal()
	_, err := ts.Typeset(`\begin{pmatrix}1&2\end{pmatrix}`, false)
	if err == nil {
		t.Fatal("expected error for matrix environment")
	}
	var envErr *ErrUnsupportedEnvironment
	if !errors.As(err, &envErr) {
		t.Fatalf("expected ErrUnsupportedEnvironment, got %T", err)
	}
	if envErr.Env != "pmatrix" {
		t.Errorf("expected env pmatrix, got %q", envErr.Env)
	}
}

func TestTerminal_TextCommandUnwrapped(t *testing.T) {
	ts := NewTerminal()
	got, err := ts.Typeset(`\text{area} = \pi`, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "area = π" {
		t.Errorf("expected 'area = π', got %q", got)
	}
}
