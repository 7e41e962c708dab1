package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/gradepad/internal/llm"
)

// Service runs the three transcription-flavored operations: text
// refinement, document transcription, and solution transcription.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a transcription service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Refine wraps mathematical substrings of mixed text in inline math
// delimiters and converts math jargon to LaTeX commands. Empty input
// short-circuits without a network call.
func (s *Service) Refine(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	ctx = llm.WithPurpose(ctx, "refine")

	req := llm.Request{
		System: refineSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: refineUserInstructions + text},
		},
		MaxTokens:   s.cfg.RefineMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("refine: %w", err)
	}

	return strings.TrimSpace(rawText(resp)), nil
}

// ToDocument transcribes a scanned submission into a complete LaTeX
// document. The result is raw source; stray markdown fences from the
// model are stripped.
func (s *Service) ToDocument(ctx context.Context, file llm.Attachment) (string, error) {
	ctx = llm.WithPurpose(ctx, "transcribe-document")

	req := llm.Request{
		System: documentSystemPrompt,
		Messages: []llm.Message{
			{
				Role:        llm.RoleUser,
				Content:     documentUserMessage,
				Attachments: []llm.Attachment{file},
			},
		},
		MaxTokens:   s.cfg.DocumentMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcribe document: %w", err)
	}

	return stripFences(strings.TrimSpace(rawText(resp))), nil
}

// Solution transcribes a scanned ideal solution into free text with
// embedded inline math markup.
func (s *Service) Solution(ctx context.Context, file llm.Attachment) (string, error) {
	ctx = llm.WithPurpose(ctx, "transcribe-solution")

	req := llm.Request{
		System: solutionSystemPrompt,
		Messages: []llm.Message{
			{
				Role:        llm.RoleUser,
				Content:     solutionUserMessage,
				Attachments: []llm.Attachment{file},
			},
		},
		MaxTokens:   s.cfg.SolutionMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcribe solution: %w", err)
	}

	return strings.TrimSpace(rawText(resp)), nil
}

// rawText unwraps a schemaless response. Providers return free text as
// a JSON raw message; a JSON string literal is unquoted, anything else
// is taken verbatim.
func rawText(resp *llm.Response) string {
	raw := resp.Content
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

var fenceRe = regexp.MustCompile("(?s)^```(?:latex|tex)?\\s*\n(.*?)\n?```$")

// stripFences removes a single wrapping markdown code fence.
func stripFences(s string) string {
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
