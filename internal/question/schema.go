package question

import "github.com/abhisek/gradepad/internal/llm"

// ExtractionSchema defines the JSON schema for question extraction.
// totalMarks stays optional: the client substitutes the configured
// default when the model cannot infer it.
var ExtractionSchema = &llm.Schema{
	Name:        "question-extraction",
	Description: "A question extracted from a scanned question paper",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short question title (3-10 words), e.g. 'Quadratic Equations — Q3'",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Full question text with math in $...$ delimiters",
			},
			"totalMarks": map[string]any{
				"type":        "number",
				"description": "Total marks printed on the paper, omit if not visible",
			},
		},
		"required":             []any{"title", "description"},
		"additionalProperties": false,
	},
}
