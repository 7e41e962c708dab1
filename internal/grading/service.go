package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/gradepad/internal/llm"
)

// Service grades submissions asynchronously. Every request carries a
// monotonically increasing sequence number; a completion whose sequence
// is no longer the latest issued is discarded, so a fast succession of
// requests can never surface an out-of-date assessment.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu         sync.Mutex
	lastIssued uint64
	pending    *Outcome
}

// NewService creates a grading service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts an async grading call and returns its sequence number.
// A newer request supersedes any in-flight one: the older call is not
// cancelled, but its completion will be dropped.
func (s *Service) Request(ctx context.Context, input Input) uint64 {
	seq := s.nextSeq()
	go func() {
		res, err := s.grade(ctx, input)
		s.complete(seq, res, err)
	}()
	return seq
}

// Consume returns the latest completed grading outcome, if one is
// ready. The pending slot is cleared on consumption.
func (s *Service) Consume() (*Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil, false
	}
	out := s.pending
	s.pending = nil
	return out, true
}

// Grade runs one synchronous grading call. Used by the CLI; the TUI
// goes through Request/Consume.
func (s *Service) Grade(ctx context.Context, input Input) (*Result, error) {
	return s.grade(ctx, input)
}

func (s *Service) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastIssued++
	return s.lastIssued
}

func (s *Service) complete(seq uint64, res *Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.lastIssued {
		return
	}
	if res != nil {
		res.Seq = seq
	}
	s.pending = &Outcome{Result: res, Err: err, Seq: seq}
}

type gradingOutput struct {
	Score        float64  `json:"score"`
	MaxScore     float64  `json:"maxScore"`
	Summary      string   `json:"summary"`
	Feedback     string   `json:"feedback"`
	Mistakes     []string `json:"mistakes"`
	MistakeTypes []string `json:"mistakeTypes"`
	Confidence   float64  `json:"confidence"`
	Suggestions  []string `json:"suggestions"`
}

func (s *Service) grade(ctx context.Context, input Input) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "grade")

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{
				Role:        llm.RoleUser,
				Content:     buildGradingUserMessage(input),
				Attachments: refImage(input.Question),
			},
		},
		Schema:      GradingSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading: %w", err)
	}

	var out gradingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grading response: %w", err)
	}

	return &Result{
		Score:        out.Score,
		MaxScore:     out.MaxScore,
		Summary:      out.Summary,
		Feedback:     out.Feedback,
		Mistakes:     out.Mistakes,
		MistakeTypes: out.MistakeTypes,
		Confidence:   out.Confidence,
		Suggestions:  out.Suggestions,
	}, nil
}
