package grading

import (
	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/question"
)

// MistakeCategories is the closed set of labels a grading call may
// assign to mistakes. The response schema enumerates exactly these.
var MistakeCategories = []string{
	"conceptual",
	"calculation",
	"procedural",
	"notation",
	"incomplete",
}

// Result is one complete grading assessment. It is produced atomically
// by a single grading call and replaced wholesale by the next one.
type Result struct {
	Score        float64
	MaxScore     float64
	Summary      string
	Feedback     string
	Mistakes     []string
	MistakeTypes []string
	Confidence   float64
	Suggestions  []string

	// Seq identifies the grading request that produced this result.
	Seq uint64
}

// Input holds everything a grading call needs: the student's LaTeX
// source and the question it answers.
type Input struct {
	Source   string
	Question question.Context
}

// Outcome is a completed grading call: a result or an error, never both.
type Outcome struct {
	Result *Result
	Err    error
	Seq    uint64
}

func refImage(q question.Context) []llm.Attachment {
	if q.RefImage == nil {
		return nil
	}
	return []llm.Attachment{*q.RefImage}
}
