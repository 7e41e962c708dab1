package question

const extractionSystemPrompt = `You are an assistant for a math grading tool. You read scanned or photographed question papers and extract the question an instructor wants to grade against.`

const extractionUserMessage = `Extract the question from the attached image or PDF.

Instructions:
1. Produce a short title identifying the question.
2. Produce the complete question text. Wrap every mathematical expression in $...$ delimiters and use LaTeX commands for math notation.
3. If a mark total is printed (e.g. "[5 marks]"), report it as totalMarks. If no total is visible, omit the field entirely — do not guess.`
