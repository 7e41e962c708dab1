package question

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/gradepad/internal/llm"
)

func pngAttachment() llm.Attachment {
	return llm.Attachment{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}
}

func TestExtract_AttachesFreshIdentifier(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"Q3","description":"Solve $x^2=4$","totalMarks":5}`),
	})
	ex := NewExtractor(mock, DefaultConfig())

	q, err := ex.Extract(t.Context(), pngAttachment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("expected a generated identifier")
	}
	if q.Title != "Q3" || q.Description != "Solve $x^2=4$" {
		t.Errorf("unexpected fields: %+v", q)
	}
	if q.TotalMarks != 5 {
		t.Errorf("expected 5 marks, got %v", q.TotalMarks)
	}

	q2, err := ex.Extract(t.Context(), pngAttachment())
	if err == nil && q2 != nil && q2.ID == q.ID {
		t.Error("identifiers must be unique per extraction")
	}
}

func TestExtract_MissingMarksSubstitutesDefault(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"","description":"X"}`),
	})
	ex := NewExtractor(mock, DefaultConfig())

	q, err := ex.Extract(t.Context(), pngAttachment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalMarks != 10 {
		t.Errorf("expected default 10 marks, got %v", q.TotalMarks)
	}
	if q.Description != "X" {
		t.Errorf("provided description must be kept, got %q", q.Description)
	}
	if q.ID == "" {
		t.Error("expected a generated identifier")
	}
}

func TestExtract_DefaultMarksConfigurable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"T","description":"D"}`),
	})
	cfg := DefaultConfig()
	cfg.DefaultTotalMarks = 20
	ex := NewExtractor(mock, cfg)

	q, err := ex.Extract(t.Context(), pngAttachment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalMarks != 20 {
		t.Errorf("expected configured 20 marks, got %v", q.TotalMarks)
	}
}

func TestExtract_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	ex := NewExtractor(mock, DefaultConfig())

	if _, err := ex.Extract(t.Context(), pngAttachment()); err == nil {
		t.Fatal("expected error")
	}
}

func TestExtract_SendsFileBeforeInstructions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"T","description":"D"}`),
	})
	ex := NewExtractor(mock, DefaultConfig())

	if _, err := ex.Extract(t.Context(), pngAttachment()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "question-extraction" {
		t.Error("expected question-extraction schema on request")
	}
	if len(req.Messages) != 1 || len(req.Messages[0].Attachments) != 1 {
		t.Fatalf("expected one message with one attachment, got %+v", req.Messages)
	}
	if req.Messages[0].Attachments[0].MIMEType != "image/png" {
		t.Errorf("unexpected attachment MIME: %q", req.Messages[0].Attachments[0].MIMEType)
	}
}
