package question

import "github.com/abhisek/gradepad/internal/llm"

// Context is the instructor-defined question a submission is graded
// against. Created fresh per session; never persisted.
type Context struct {
	ID            string
	Title         string
	Description   string
	TotalMarks    float64
	IdealSolution string

	// RefImage is an optional reference image (diagram, printed
	// question sheet) included with every grading call.
	RefImage *llm.Attachment
}

// HasRefImage reports whether a reference image is attached.
func (c *Context) HasRefImage() bool {
	return c.RefImage != nil && len(c.RefImage.Data) > 0
}
