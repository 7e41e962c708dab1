package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradepad/internal/router"
	"github.com/abhisek/gradepad/internal/screen"
	"github.com/abhisek/gradepad/internal/store"
	"github.com/abhisek/gradepad/internal/ui/layout"
	"github.com/abhisek/gradepad/internal/ui/theme"
)

type historyLoadedMsg struct {
	Gradings []store.GradingRecord
	Err      error
}

// HistoryScreen lists past grading results, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	gradings  []store.GradingRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return historyLoadedMsg{}
		}
		gradings, err := s.eventRepo.ListGradings(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Gradings: gradings}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.gradings = msg.Gradings
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.gradings)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.gradings) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No gradings yet. Grade a submission first.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.gradings {
		dateStr := g.Timestamp.Format("Jan 02, 2006 15:04")
		title := g.QuestionTitle
		if title == "" {
			title = "untitled"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-30s  %.5g/%.5g", prefix, dateStr, clip(title, 30), g.Score, g.MaxScore)
		if len(g.Mistakes) > 0 {
			line += fmt.Sprintf("  %d mistake", len(g.Mistakes))
			if len(g.Mistakes) > 1 {
				line += "s"
			}
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := []string{
				fmt.Sprintf("    Confidence: %.0f%%", g.Confidence*100),
				"    " + g.Summary,
			}
			for j, m := range g.Mistakes {
				category := ""
				if j < len(g.MistakeTypes) {
					category = " [" + g.MistakeTypes[j] + "]"
				}
				detail = append(detail, "    • "+m+category)
			}
			for _, line := range detail {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
