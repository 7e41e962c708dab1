package transcribe

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/gradepad/internal/llm"
)

func scan() llm.Attachment {
	return llm.Attachment{Data: []byte("%PDF-1.4"), MIMEType: "application/pdf"}
}

func TestRefine_EmptyInputShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	out, err := svc.Refine(t.Context(), "   \n  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no network call, got %d", mock.CallCount())
	}
}

func TestRefine_TrimsAndReturnsText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"  the root is $\\sqrt{2}$  "`),
	})
	svc := NewService(mock, DefaultConfig())

	out, err := svc.Refine(t.Context(), "the root is square root of 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `the root is $\sqrt{2}$` {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestToDocument_StripsMarkdownFences(t *testing.T) {
	doc := "\\documentclass{article}\n\\begin{document}\n$x=1$\n\\end{document}"
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("\"```latex\\n" + `\\documentclass{article}\n\\begin{document}\n$x=1$\n\\end{document}` + "\\n```\""),
	})
	svc := NewService(mock, DefaultConfig())

	out, err := svc.ToDocument(t.Context(), scan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != doc {
		t.Errorf("expected fences stripped:\nwant %q\ngot  %q", doc, out)
	}
}

func TestToDocument_RawSourcePassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"\\documentclass{article}"`),
	})
	svc := NewService(mock, DefaultConfig())

	out, err := svc.ToDocument(t.Context(), scan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `\documentclass{article}` {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSolution_SendsAttachment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Step 1: $x=2$"`),
	})
	svc := NewService(mock, DefaultConfig())

	out, err := svc.Solution(t.Context(), scan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Step 1: $x=2$" {
		t.Errorf("unexpected output: %q", out)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 || len(req.Messages[0].Attachments) != 1 {
		t.Fatalf("expected one message with attachment, got %+v", req.Messages)
	}
	if req.Schema != nil {
		t.Error("solution transcription must not request structured output")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```latex\nx\n```", "x"},
		{"```\nx\n```", "x"},
		{"```tex\nx\n```", "x"},
		{"no fences", "no fences"},
		{"``` partial", "``` partial"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
