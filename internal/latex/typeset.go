package latex

import (
	"fmt"
	"regexp"
	"strings"
)

// Typesetter turns a math-markup source span into displayable output.
// The renderer owns segmentation and fallback policy; everything past
// delimiter stripping is delegated here.
type Typesetter interface {
	// Typeset renders src. display selects display-style output.
	Typeset(src string, display bool) (string, error)
}

// ErrUnsupportedEnvironment marks a render failure caused by a
// \begin{...} environment the typesetter cannot handle. Callers show a
// distinguished message for it.
type ErrUnsupportedEnvironment struct {
	Env string
}

func (e *ErrUnsupportedEnvironment) Error() string {
	return fmt.Sprintf("unsupported environment %q — only plain math can be previewed in the terminal", e.Env)
}

// Terminal is a Typesetter that approximates LaTeX math with Unicode.
// It covers the subset that shows up in grades 6-12 submissions:
// fractions, roots, exponents, Greek letters, relational operators.
type Terminal struct{}

// NewTerminal returns the built-in terminal typesetter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

var (
	beginEnvRe  = regexp.MustCompile(`\\begin\{([a-zA-Z*]+)\}`)
	fracRe      = regexp.MustCompile(`\\[dt]?frac\{([^{}]*)\}\{([^{}]*)\}`)
	sqrtRe      = regexp.MustCompile(`\\sqrt\{([^{}]*)\}`)
	sqrtNRe     = regexp.MustCompile(`\\sqrt\[([^\]]*)\]\{([^{}]*)\}`)
	textRe      = regexp.MustCompile(`\\(?:text|mathrm|operatorname)\{([^{}]*)\}`)
	supBraceRe  = regexp.MustCompile(`\^\{([^{}]*)\}`)
	subBraceRe  = regexp.MustCompile(`_\{([^{}]*)\}`)
	supCharRe   = regexp.MustCompile(`\^([0-9a-zA-Z+\-=()])`)
	subCharRe   = regexp.MustCompile(`_([0-9a-zA-Z+\-=()])`)
	commandRe   = regexp.MustCompile(`\\[a-zA-Z]+`)
	spacingCmds = regexp.MustCompile(`\\[,;:!]|\\quad|\\qquad`)
)

// commandGlyphs maps LaTeX commands to Unicode equivalents.
var commandGlyphs = map[string]string{
	`\alpha`: "α", `\beta`: "β", `\gamma`: "γ", `\delta`: "δ",
	`\epsilon`: "ε", `\varepsilon`: "ε", `\zeta`: "ζ", `\eta`: "η",
	`\theta`: "θ", `\iota`: "ι", `\kappa`: "κ", `\lambda`: "λ",
	`\mu`: "μ", `\nu`: "ν", `\xi`: "ξ", `\pi`: "π", `\rho`: "ρ",
	`\sigma`: "σ", `\tau`: "τ", `\phi`: "φ", `\varphi`: "φ",
	`\chi`: "χ", `\psi`: "ψ", `\omega`: "ω",
	`\Gamma`: "Γ", `\Delta`: "Δ", `\Theta`: "Θ", `\Lambda`: "Λ",
	`\Xi`: "Ξ", `\Pi`: "Π", `\Sigma`: "Σ", `\Phi`: "Φ",
	`\Psi`: "Ψ", `\Omega`: "Ω",

	`\times`: "×", `\div`: "÷", `\cdot`: "·", `\pm`: "±", `\mp`: "∓",
	`\le`: "≤", `\leq`: "≤", `\ge`: "≥", `\geq`: "≥",
	`\ne`: "≠", `\neq`: "≠", `\approx`: "≈", `\equiv`: "≡",
	`\sim`: "∼", `\propto`: "∝",
	`\infty`: "∞", `\partial`: "∂", `\nabla`: "∇",
	`\sum`: "Σ", `\prod`: "Π", `\int`: "∫",
	`\in`: "∈", `\notin`: "∉", `\subset`: "⊂", `\subseteq`: "⊆",
	`\cup`: "∪", `\cap`: "∩", `\emptyset`: "∅", `\forall`: "∀",
	`\exists`: "∃", `\therefore`: "∴", `\because`: "∵",
	`\to`: "→", `\rightarrow`: "→", `\leftarrow`: "←",
	`\Rightarrow`: "⇒", `\Leftrightarrow`: "⇔", `\implies`: "⇒",
	`\angle`: "∠", `\degree`: "°", `\circ`: "∘",
	`\ldots`: "…", `\dots`: "…", `\cdots`: "⋯",
	`\left`: "", `\right`: "", `\displaystyle`: "", `\limits`: "",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'i': 'ᵢ', 'n': 'ₙ', 'x': 'ₓ',
}

func (t *Terminal) Typeset(src string, display bool) (string, error) {
	src = strings.TrimSpace(src)

	if m := beginEnvRe.FindStringSubmatch(src); m != nil {
		return "", &ErrUnsupportedEnvironment{Env: m[1]}
	}
	if err := checkBalanced(src); err != nil {
		return "", err
	}

	out := src
	out = spacingCmds.ReplaceAllString(out, " ")
	out = sqrtNRe.ReplaceAllString(out, "$1√($2)")
	out = sqrtRe.ReplaceAllString(out, "√($1)")
	out = textRe.ReplaceAllString(out, "$1")

	// Nested fractions resolve innermost-first.
	for fracRe.MatchString(out) {
		out = fracRe.ReplaceAllString(out, "($1)/($2)")
	}

	out = replaceScripts(out, supBraceRe, supCharRe, superscripts, "^")
	out = replaceScripts(out, subBraceRe, subCharRe, subscripts, "_")

	// Remaining commands must all be known glyphs.
	var unknown string
	out = commandRe.ReplaceAllStringFunc(out, func(cmd string) string {
		if g, ok := commandGlyphs[cmd]; ok {
			return g
		}
		if unknown == "" {
			unknown = cmd
		}
		return cmd
	})
	if unknown != "" {
		return "", fmt.Errorf("unknown command %s", unknown)
	}

	out = strings.ReplaceAll(out, "{", "")
	out = strings.ReplaceAll(out, "}", "")
	out = collapseSpaces(out)

	if display {
		out = "  " + out + "  "
	}
	return out, nil
}

// scriptHold stands in for a fallback marker between the brace pass
// and the single-char pass, so ^(...) emitted by the former is not
// re-matched by the latter.
const scriptHold = "\x00"

// replaceScripts rewrites ^{...}/_{...} and single-char forms. When
// every rune of the argument has a Unicode script form it is used;
// otherwise the fallback keeps the marker with parentheses.
func replaceScripts(s string, braceRe, charRe *regexp.Regexp, table map[rune]rune, marker string) string {
	conv := func(arg string) (string, bool) {
		var b strings.Builder
		for _, r := range arg {
			m, ok := table[r]
			if !ok {
				return "", false
			}
			b.WriteRune(m)
		}
		return b.String(), true
	}

	s = braceRe.ReplaceAllStringFunc(s, func(m string) string {
		arg := braceRe.FindStringSubmatch(m)[1]
		if out, ok := conv(arg); ok {
			return out
		}
		return scriptHold + "(" + arg + ")"
	})
	s = charRe.ReplaceAllStringFunc(s, func(m string) string {
		arg := charRe.FindStringSubmatch(m)[1]
		if out, ok := conv(arg); ok {
			return out
		}
		return marker + arg
	})
	return strings.ReplaceAll(s, scriptHold, marker)
}

func checkBalanced(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // skip escaped char
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced braces")
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced braces")
	}
	return nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
