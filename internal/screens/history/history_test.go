package history

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradepad/internal/store"
)

func loaded(t *testing.T, records []store.GradingRecord) *HistoryScreen {
	t.Helper()
	s := New(nil)
	updated, _ := s.Update(historyLoadedMsg{Gradings: records})
	return updated.(*HistoryScreen)
}

func sampleRecords() []store.GradingRecord {
	return []store.GradingRecord{
		{
			ID:        2,
			Timestamp: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			GradingEventData: store.GradingEventData{
				QuestionTitle: "Quadratic Roots",
				Score:         7,
				MaxScore:      10,
				Summary:       "Mostly correct.",
				Mistakes:      []string{"sign error in step 3"},
				MistakeTypes:  []string{"calculation"},
				Confidence:    0.9,
			},
		},
		{
			ID:        1,
			Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			GradingEventData: store.GradingEventData{
				QuestionTitle: "Integration by Parts",
				Score:         10,
				MaxScore:      10,
				Summary:       "Complete solution.",
				Confidence:    0.95,
			},
		},
	}
}

func TestHistoryLoadedPopulatesList(t *testing.T) {
	s := loaded(t, sampleRecords())

	if !s.loaded {
		t.Fatal("expected loaded flag set")
	}
	if len(s.gradings) != 2 {
		t.Fatalf("expected 2 gradings, got %d", len(s.gradings))
	}
}

func TestHistoryLoadError(t *testing.T) {
	s := New(nil)
	updated, _ := s.Update(historyLoadedMsg{Err: errTest})
	hs := updated.(*HistoryScreen)

	if hs.errMsg == "" {
		t.Fatal("expected error message")
	}
}

func TestHistoryNavigationClamps(t *testing.T) {
	s := loaded(t, sampleRecords())

	s.Update(keyMsg("up"))
	if s.selected != 0 {
		t.Fatalf("up at top must stay at 0, got %d", s.selected)
	}

	s.Update(keyMsg("down"))
	if s.selected != 1 {
		t.Fatalf("expected selection 1, got %d", s.selected)
	}

	s.Update(keyMsg("down"))
	if s.selected != 1 {
		t.Fatalf("down at bottom must stay at 1, got %d", s.selected)
	}
}

func TestHistoryExpandToggle(t *testing.T) {
	s := loaded(t, sampleRecords())

	s.Update(keyMsg("enter"))
	if !s.expanded[0] {
		t.Fatal("expected entry 0 expanded")
	}

	s.Update(keyMsg("enter"))
	if s.expanded[0] {
		t.Fatal("expected entry 0 collapsed again")
	}
}

func TestHistoryEmptyView(t *testing.T) {
	s := loaded(t, nil)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected a non-empty placeholder view")
	}
}

var errTest = errFixture("history load failed")

type errFixture string

func (e errFixture) Error() string { return string(e) }

func keyMsg(s string) tea.Msg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	default:
		return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
	}
}
