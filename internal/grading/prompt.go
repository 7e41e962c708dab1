package grading

import (
	"fmt"
	"strings"
)

const gradingSystemPrompt = `You are an experienced math examiner grading a student's written submission. You are fair, precise, and constructive. You award partial credit for correct reasoning even when the final answer is wrong.`

func buildGradingUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Grade the following submission out of %.5g marks.\n\n", in.Question.TotalMarks)

	if in.Question.Title != "" {
		fmt.Fprintf(&b, "Question: %s\n", in.Question.Title)
	}
	fmt.Fprintf(&b, "%s\n\n", in.Question.Description)

	if in.Question.IdealSolution != "" {
		fmt.Fprintf(&b, "Ideal solution for reference:\n%s\n\n", in.Question.IdealSolution)
	}

	if in.Question.HasRefImage() {
		b.WriteString("The attached image shows the original question as printed; use it to resolve any ambiguity in the text above.\n\n")
	}

	fmt.Fprintf(&b, "Student submission (LaTeX):\n%s\n\n", in.Source)

	b.WriteString(`Grading rules:
1. Wrap every mathematical token or expression in your output in $...$ delimiters.
2. Consider partial credit: award marks for each correct step, not just the final answer.
3. Feedback must cite the specific step where each issue occurs.
4. Classify every mistake as exactly one of: conceptual, calculation, procedural, notation, incomplete.
5. Set maxScore to the total marks stated above.
6. Report your confidence in this assessment as a number between 0 and 1.`)

	return b.String()
}
