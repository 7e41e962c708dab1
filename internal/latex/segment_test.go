package latex

import "testing"

func TestSplit_InlineDollarStripsOuterPair(t *testing.T) {
	segs := Split("solve $x+1$ for x")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d: %#v", len(segs), segs)
	}
	if segs[0].Kind != KindText || segs[0].Src != "solve " {
		t.Errorf("unexpected first segment: %#v", segs[0])
	}
	if segs[1].Kind != KindInline || !segs[1].Explicit {
		t.Errorf("expected explicit inline math, got %#v", segs[1])
	}
	if segs[1].Src != "x+1" {
		t.Errorf("expected exactly the outer pair stripped, got %q", segs[1].Src)
	}
}

func TestSplit_DisplayDelimiters(t *testing.T) {
	tests := []struct {
		input string
		src   string
	}{
		{`$$x^2$$`, "x^2"},
		{`\[x^2\]`, "x^2"},
	}
	for _, tt := range tests {
		segs := Split(tt.input)
		if len(segs) != 1 {
			t.Fatalf("Split(%q): expected 1 segment, got %d", tt.input, len(segs))
		}
		if segs[0].Kind != KindDisplay {
			t.Errorf("Split(%q): expected display math, got kind %d", tt.input, segs[0].Kind)
		}
		if segs[0].Src != tt.src {
			t.Errorf("Split(%q): expected src %q, got %q", tt.input, tt.src, segs[0].Src)
		}
	}
}

func TestSplit_ParenDelimitersAreInline(t *testing.T) {
	segs := Split(`\(a+b\)`)
	if len(segs) != 1 || segs[0].Kind != KindInline || segs[0].Src != "a+b" {
		t.Fatalf("unexpected segmentation: %#v", segs)
	}
}

func TestSplit_DoubleDollarNotSplitAsTwoInline(t *testing.T) {
	segs := Split("$$a+b$$")
	if len(segs) != 1 || segs[0].Kind != KindDisplay {
		t.Fatalf("expected single display segment, got %#v", segs)
	}
}

func TestSplit_ImplicitAssignmentDetected(t *testing.T) {
	segs := Split("a=2")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %#v", len(segs), segs)
	}
	if segs[0].Kind != KindInline || segs[0].Explicit {
		t.Errorf("expected implicit inline math, got %#v", segs[0])
	}
}

func TestSplit_PlainProseLeftAlone(t *testing.T) {
	segs := Split("a b c")
	if len(segs) != 1 || segs[0].Kind != KindText || segs[0].Src != "a b c" {
		t.Fatalf("expected plain text passthrough, got %#v", segs)
	}
}

func TestSplit_ImplicitCommandDetected(t *testing.T) {
	segs := Split(`the area is \frac{1}{2}bh here`)
	var math []Segment
	for _, s := range segs {
		if s.Kind != KindText {
			math = append(math, s)
		}
	}
	if len(math) == 0 {
		t.Fatal("expected at least one implicit math segment")
	}
	if math[0].Explicit {
		t.Error("command match inside prose should be a heuristic guess")
	}
}

func TestSplit_ExponentPatternDetected(t *testing.T) {
	segs := Split("then x^2 follows")
	found := false
	for _, s := range segs {
		if s.Kind == KindInline && !s.Explicit {
			found = true
			if s.Src != "x^2" {
				t.Errorf("expected x^2, got %q", s.Src)
			}
		}
	}
	if !found {
		t.Fatal("expected exponent pattern to be detected")
	}
}

func TestSplit_MixedExplicitAndImplicit(t *testing.T) {
	segs := Split("given $f(x)=x^2$, we know f is even")
	if segs[0].Kind != KindText {
		t.Fatalf("expected leading text, got %#v", segs[0])
	}
	if segs[1].Kind != KindInline || !segs[1].Explicit || segs[1].Src != "f(x)=x^2" {
		t.Fatalf("unexpected explicit segment: %#v", segs[1])
	}
}

func TestSplit_UnterminatedDollarIsText(t *testing.T) {
	segs := Split("costs $5 total")
	for _, s := range segs {
		if s.Explicit {
			t.Fatalf("unterminated $ must not open a math segment: %#v", segs)
		}
	}
}
