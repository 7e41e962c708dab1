package latex

import "regexp"

// Kind classifies a segment of mixed prose/math text.
type Kind int

const (
	KindText Kind = iota
	KindInline
	KindDisplay
)

// Segment is one token of the segmented input. For math segments, Src
// holds the content with the outer delimiter pair stripped. Explicit
// records whether the segment came from a delimiter pair (pass 1) or a
// heuristic guess (pass 2); the render fallback policy depends on it.
type Segment struct {
	Kind     Kind
	Src      string
	Explicit bool
}

// delimPatterns are tried in order on every scan position. Display
// delimiters come first so `$$x$$` never matches as two empty `$...$`
// pairs. All matches are non-greedy.
var delimPatterns = []struct {
	re   *regexp.Regexp
	kind Kind
}{
	{regexp.MustCompile(`(?s)^\$\$(.+?)\$\$`), KindDisplay},
	{regexp.MustCompile(`(?s)^\\\[(.+?)\\\]`), KindDisplay},
	{regexp.MustCompile(`^\$([^$\n]+?)\$`), KindInline},
	{regexp.MustCompile(`(?s)^\\\((.+?)\\\)`), KindInline},
}

// Split segments mixed text into alternating TEXT and MATH segments.
// Pass 1 splits on explicit delimiter pairs; pass 2 runs the heuristic
// detector over the remaining plain-text segments.
func Split(text string) []Segment {
	segs := splitExplicit(text)

	var out []Segment
	for _, s := range segs {
		if s.Kind != KindText {
			out = append(out, s)
			continue
		}
		out = append(out, detectImplicit(s.Src)...)
	}
	return out
}

// splitExplicit is pass 1: a linear scan that consumes delimiter pairs
// and collects everything between them as plain text.
func splitExplicit(text string) []Segment {
	var segs []Segment
	var plain []byte

	flush := func() {
		if len(plain) > 0 {
			segs = append(segs, Segment{Kind: KindText, Src: string(plain)})
			plain = plain[:0]
		}
	}

	for i := 0; i < len(text); {
		c := text[i]
		if c != '$' && c != '\\' {
			plain = append(plain, c)
			i++
			continue
		}

		matched := false
		for _, p := range delimPatterns {
			m := p.re.FindStringSubmatch(text[i:])
			if m == nil {
				continue
			}
			flush()
			segs = append(segs, Segment{Kind: p.kind, Src: m[1], Explicit: true})
			i += len(m[0])
			matched = true
			break
		}
		if !matched {
			plain = append(plain, c)
			i++
		}
	}
	flush()
	return segs
}

// Heuristic patterns for un-delimited math in prose. Ordered: commands
// first, then structural patterns (exponent/subscript, assignment,
// polynomial-looking runs). All are guesses; render failure falls back
// to literal text.
var implicitPatterns = []*regexp.Regexp{
	// LaTeX command with optional arguments: \frac{1}{2}, \alpha
	regexp.MustCompile(`\\[a-zA-Z]+(?:\{[^{}]*\})*`),
	// Variable with exponent or subscript: x^2, a_1, y^{10}
	regexp.MustCompile(`\b[a-zA-Z]\s*[\^_]\s*(?:\{[^{}]+\}|[0-9a-zA-Z])`),
	// Simple assignment: a=2, x = y+1
	regexp.MustCompile(`\b[a-zA-Z]\s*=\s*[-+]?[0-9a-zA-Z+\-*/^.]+`),
	// Polynomial-looking expression: 2x+3, x^2-4x+4
	regexp.MustCompile(`[-+]?\b\d*[a-zA-Z](?:\^\d+)?(?:\s*[-+]\s*\d*[a-zA-Z0-9](?:\^\d+)?)+`),
}

// detectImplicit is pass 2: scan a plain-text segment for math-like
// substrings. Matches become inline math segments with Explicit=false.
func detectImplicit(text string) []Segment {
	var segs []Segment
	rest := text

	for rest != "" {
		loc, pat := firstImplicitMatch(rest)
		if loc == nil {
			segs = append(segs, Segment{Kind: KindText, Src: rest})
			break
		}
		if loc[0] > 0 {
			segs = append(segs, Segment{Kind: KindText, Src: rest[:loc[0]]})
		}
		_ = pat
		segs = append(segs, Segment{Kind: KindInline, Src: rest[loc[0]:loc[1]]})
		rest = rest[loc[1]:]
	}
	return segs
}

// firstImplicitMatch returns the leftmost (then longest) heuristic match.
func firstImplicitMatch(s string) ([]int, *regexp.Regexp) {
	var best []int
	var bestPat *regexp.Regexp
	for _, re := range implicitPatterns {
		loc := re.FindStringIndex(s)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best[0] || (loc[0] == best[0] && loc[1] > best[1]) {
			best = loc
			bestPat = re
		}
	}
	return best, bestPat
}
