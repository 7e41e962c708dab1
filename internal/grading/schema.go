package grading

import "github.com/abhisek/gradepad/internal/llm"

// GradingSchema defines the JSON schema for grading assessments.
// Every field is required; a response missing any of them is rejected
// by validation rather than patched with defaults.
var GradingSchema = &llm.Schema{
	Name:        "grading-assessment",
	Description: "A graded assessment of a student's math submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"description": "Marks awarded, including partial credit",
				"minimum":     0,
			},
			"maxScore": map[string]any{
				"type":        "number",
				"description": "Total marks available for the question",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentence overall verdict",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Detailed feedback citing specific steps, math in $...$ delimiters",
			},
			"mistakes": map[string]any{
				"type":        "array",
				"description": "Each mistake found, citing the step where it occurs",
				"items":       map[string]any{"type": "string"},
			},
			"mistakeTypes": map[string]any{
				"type":        "array",
				"description": "Category of each mistake, aligned with the mistakes array",
				"items": map[string]any{
					"type": "string",
					"enum": []any{
						"conceptual",
						"calculation",
						"procedural",
						"notation",
						"incomplete",
					},
				},
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Grader confidence in this assessment",
				"minimum":     0,
				"maximum":     1,
			},
			"suggestions": map[string]any{
				"type":        "array",
				"description": "Concrete improvements, most important first",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required": []any{
			"score", "maxScore", "summary", "feedback",
			"mistakes", "mistakeTypes", "confidence", "suggestions",
		},
		"additionalProperties": false,
	},
}
