package workbench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/gradepad/internal/grading"
	"github.com/abhisek/gradepad/internal/latex"
	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/question"
	"github.com/abhisek/gradepad/internal/store"
)

func testScreen() *WorkbenchScreen {
	mock := llm.NewMockProvider()
	return New(Deps{
		Provider: mock,
		Grader:   grading.NewService(mock, grading.DefaultConfig()),
		Renderer: latex.NewRenderer(latex.NewTerminal()),
	})
}

func TestQuestionReadySetsContext(t *testing.T) {
	s := testScreen()
	q := &question.Context{ID: "q-1", Title: "T", Description: "D", TotalMarks: 10}

	updated, _ := s.Update(questionReadyMsg{Question: q})
	ws := updated.(*WorkbenchScreen)

	if ws.question == nil || ws.question.ID != "q-1" {
		t.Fatalf("expected question set, got %+v", ws.question)
	}
	if ws.state.Converting {
		t.Error("converting flag must clear")
	}
	if ws.Title() != "T" {
		t.Errorf("expected title from question, got %q", ws.Title())
	}
}

func TestQuestionReadyErrorPopulatesSlot(t *testing.T) {
	s := testScreen()

	updated, _ := s.Update(questionReadyMsg{Err: errors.New("boom")})
	ws := updated.(*WorkbenchScreen)

	if ws.state.ErrMsg == "" {
		t.Error("expected error slot populated")
	}
	if ws.question != nil {
		t.Error("failed extraction must not set a question")
	}
}

func TestDocumentReadyFillsEditorAndSwitchesTab(t *testing.T) {
	s := testScreen()

	updated, cmd := s.Update(documentReadyMsg{Source: `\documentclass{article}`})
	ws := updated.(*WorkbenchScreen)

	if ws.ed.Value() != `\documentclass{article}` {
		t.Errorf("editor not filled: %q", ws.ed.Value())
	}
	if ws.tab != TabSubmission {
		t.Errorf("expected submission tab, got %v", ws.tab)
	}
	if cmd == nil {
		t.Error("expected a debounce command after transcription")
	}
}

func TestStaleDebounceGenerationIgnored(t *testing.T) {
	s := testScreen()
	s.question = &question.Context{ID: "q", TotalMarks: 10}
	s.ed.SetValue("$x=1$")

	s.markEdited()
	s.markEdited() // second edit supersedes the first

	updated, cmd := s.Update(debounceMsg{Gen: 1})
	ws := updated.(*WorkbenchScreen)

	if cmd != nil {
		t.Error("stale debounce generation must not trigger grading")
	}
	if ws.state.Grading {
		t.Error("grading must not start for a stale generation")
	}
}

func TestCurrentDebounceGenerationGrades(t *testing.T) {
	s := testScreen()
	s.question = &question.Context{ID: "q", TotalMarks: 10}
	s.ed.SetValue("$x=1$")
	s.markEdited()

	updated, cmd := s.Update(debounceMsg{Gen: s.editGen})
	ws := updated.(*WorkbenchScreen)

	if !ws.state.Grading {
		t.Error("expected grading in flight")
	}
	if cmd == nil {
		t.Error("expected poll command")
	}
}

func TestEditMarksResultStale(t *testing.T) {
	s := testScreen()
	s.result = &grading.Result{Score: 5, MaxScore: 10}

	s.markEdited()

	if !s.stale {
		t.Error("edit must mark the current result stale")
	}
	if s.result == nil {
		t.Error("stale result stays visible until replaced")
	}
}

func TestGradingErrorKeepsPreviousResult(t *testing.T) {
	s := testScreen()
	s.question = &question.Context{ID: "q", TotalMarks: 10}
	prev := &grading.Result{Score: 5, MaxScore: 10}
	s.result = prev
	s.state.Grading = true

	// The mock has no canned response, so the request fails.
	s.deps.Grader.Request(context.Background(), grading.Input{Source: "$x$", Question: *s.question})
	ws := pollUntilDone(t, s)

	if ws.state.ErrMsg == "" {
		t.Error("expected error slot populated")
	}
	if ws.result != prev {
		t.Error("previous result must survive a grading failure")
	}
	if ws.state.Grading {
		t.Error("grading flag must clear")
	}
}

func TestGradeNoopWithoutQuestion(t *testing.T) {
	s := testScreen()
	s.ed.SetValue("$x=1$")

	if cmd := s.startGrading(); cmd != nil {
		t.Error("grading without a question must not start")
	}
	if s.state.ErrMsg == "" {
		t.Error("expected a user-facing message")
	}
}

func TestUserMessageDistinguishesQuota(t *testing.T) {
	err := &llm.ErrRetriesExhausted{
		Op:       "grade",
		Attempts: 4,
		Err:      &llm.ErrRateLimit{},
	}
	msg := userMessage(err)
	if msg != "Usage limit exceeded. Please wait a moment and try again." {
		t.Errorf("unexpected quota message: %q", msg)
	}
}

func TestRestoreFromSnapshot(t *testing.T) {
	snap := &store.Snapshot{
		Data: store.SnapshotData{
			QuestionID: "q-9",
			Title:      "Old Session",
			TotalMarks: 20,
			Source:     "$a+b$",
		},
	}
	s := Restore(Deps{}, snap)

	if s.question == nil || s.question.ID != "q-9" {
		t.Fatalf("question not restored: %+v", s.question)
	}
	if s.ed.Value() != "$a+b$" {
		t.Errorf("source not restored: %q", s.ed.Value())
	}
	if s.tab != TabSubmission {
		t.Errorf("expected submission tab, got %v", s.tab)
	}
}

// pollUntilDone drives gradePollMsg updates until the in-flight
// grading call resolves.
func pollUntilDone(t *testing.T, s *WorkbenchScreen) *WorkbenchScreen {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		updated, _ := s.Update(gradePollMsg{})
		s = updated.(*WorkbenchScreen)
		if !s.state.Grading {
			return s
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("grading never resolved")
	return nil
}
