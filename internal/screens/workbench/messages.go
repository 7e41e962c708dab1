package workbench

import (
	"time"

	"github.com/abhisek/gradepad/internal/question"
)

// questionReadyMsg is sent when question extraction completes.
type questionReadyMsg struct {
	Question *question.Context
	Err      error
}

// solutionReadyMsg is sent when ideal-solution transcription completes.
type solutionReadyMsg struct {
	Text string
	Err  error
}

// documentReadyMsg is sent when submission transcription completes.
type documentReadyMsg struct {
	Source string
	Err    error
}

// refineDoneMsg is sent when math-markup refinement completes.
type refineDoneMsg struct {
	Text string
	Err  error
}

// debounceMsg fires after the quiescence window. Gen identifies the
// edit that scheduled it; a stale generation is ignored.
type debounceMsg struct {
	Gen int
}

// gradePollMsg drives polling of the grading service while a call is
// in flight.
type gradePollMsg time.Time

// spinnerTickMsg animates the in-flight spinner.
type spinnerTickMsg time.Time

// gradePersistedMsg confirms the grading event was appended.
type gradePersistedMsg struct {
	Err error
}

// exportDoneMsg is sent when the LaTeX source export finishes.
type exportDoneMsg struct {
	Path string
	Err  error
}
