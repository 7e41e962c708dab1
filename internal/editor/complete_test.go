package editor

import "testing"

func TestCommandStart(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want int
	}{
		{"partial command", `x = \fr`, 7, 4},
		{"caret mid-command", `\frac{1}{2}`, 3, 0},
		{"no backslash", "hello", 5, -1},
		{"lone backslash", `\`, 1, -1},
		{"escaped backslash", `\\fr`, 4, -1},
		{"caret after space", `\frac `, 6, -1},
		{"empty line", "", 0, -1},
		{"col past end clamps", `\fr`, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commandStart(tt.line, tt.col); got != tt.want {
				t.Errorf("commandStart(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestSuggest_PrefixFiltered(t *testing.T) {
	_, matches := suggest(`\fr`, 3)
	if len(matches) == 0 {
		t.Fatal("expected suggestions for \\fr")
	}
	for _, m := range matches {
		if len(m) < 2 || m[:2] != "fr" {
			t.Errorf("suggestion %q does not extend prefix", m)
		}
	}
}

func TestSuggest_ExcludesExactInput(t *testing.T) {
	_, matches := suggest(`\pi`, 3)
	for _, m := range matches {
		if m == "pi" {
			t.Error("exact current input must not be suggested")
		}
	}
}

func TestSuggest_NoMatches(t *testing.T) {
	start, matches := suggest(`\zzz`, 4)
	if start != -1 || matches != nil {
		t.Errorf("expected no suggestions, got start=%d matches=%v", start, matches)
	}
}

func TestAcceptReplacesPartialAndMovesCaret(t *testing.T) {
	e := New(80, 10)
	e.SetValue(`a + \sq`)
	e.refreshSuggestions()
	if len(e.suggestions) == 0 {
		t.Fatal("expected suggestions for \\sq")
	}
	chosen := e.suggestions[0]

	e.accept()

	want := `a + \` + chosen
	if got := e.Value(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if row, col := e.caret(); row != 0 || col != len(want) {
		t.Fatalf("expected caret at (0, %d), got (%d, %d)", len(want), row, col)
	}
	if e.suggestions != nil {
		t.Error("expected suggestions dismissed after accept")
	}
}

func TestAcceptOnLaterLine(t *testing.T) {
	e := New(80, 10)
	e.SetValue("x = 1\n\\fr")
	e.refreshSuggestions()
	if len(e.suggestions) == 0 {
		t.Fatal("expected suggestions for \\fr")
	}
	chosen := e.suggestions[0]

	e.accept()

	lines := []string{"x = 1", `\` + chosen}
	if got := e.Value(); got != lines[0]+"\n"+lines[1] {
		t.Fatalf("unexpected value %q", got)
	}
	if row, col := e.caret(); row != 1 || col != len(lines[1]) {
		t.Fatalf("expected caret at (1, %d), got (%d, %d)", len(lines[1]), row, col)
	}
}

func TestSuggest_StartIsBackslash(t *testing.T) {
	start, matches := suggest(`a + \sq`, 7)
	if start != 4 {
		t.Errorf("expected start 4, got %d", start)
	}
	found := false
	for _, m := range matches {
		if m == "sqrt" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected sqrt among %v", matches)
	}
}
