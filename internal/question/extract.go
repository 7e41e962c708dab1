package question

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/gradepad/internal/llm"
)

// Extractor pulls a question Context out of a scanned question paper.
type Extractor struct {
	provider llm.Provider
	cfg      Config
}

// NewExtractor creates a question extractor.
func NewExtractor(provider llm.Provider, cfg Config) *Extractor {
	return &Extractor{provider: provider, cfg: cfg}
}

type extractionOutput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TotalMarks  *float64 `json:"totalMarks"`
}

// Extract runs the extraction call and attaches a fresh identifier.
// A missing totalMarks is replaced by the configured default; a missing
// title or description fails schema validation upstream.
func (e *Extractor) Extract(ctx context.Context, file llm.Attachment) (*Context, error) {
	ctx = llm.WithPurpose(ctx, "extract-question")

	req := llm.Request{
		System: extractionSystemPrompt,
		Messages: []llm.Message{
			{
				Role:        llm.RoleUser,
				Content:     extractionUserMessage,
				Attachments: []llm.Attachment{file},
			},
		},
		Schema:      ExtractionSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question extraction: %w", err)
	}
	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("question extraction: empty response")
	}

	var out extractionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	marks := e.cfg.DefaultTotalMarks
	if out.TotalMarks != nil && *out.TotalMarks > 0 {
		marks = *out.TotalMarks
	}

	return &Context{
		ID:          uuid.NewString(),
		Title:       out.Title,
		Description: out.Description,
		TotalMarks:  marks,
	}, nil
}
