package workbench

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradepad/internal/latex"
	"github.com/abhisek/gradepad/internal/ui/components"
	"github.com/abhisek/gradepad/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *WorkbenchScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderTabBar(width))
	b.WriteString("\n\n")

	body := ""
	switch s.tab {
	case TabQuestion:
		body = s.renderQuestion(width)
	case TabSubmission:
		body = s.renderSubmission(width)
	case TabPreview:
		body = s.renderPreview(width)
	case TabResult:
		body = s.renderResult(width)
	}
	b.WriteString(body)

	if s.mode != inputNone {
		b.WriteString("\n\n  " + s.pathInput.View())
	}
	if s.paletteOpen {
		b.WriteString("\n\n" + s.renderPalette())
	}

	if status := s.renderStatus(); status != "" {
		b.WriteString("\n\n" + status)
	}

	return b.String()
}

func (s *WorkbenchScreen) renderTabBar(width int) string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if Tab(i) == s.tab {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
			name = "[ " + name + " ]"
		}
		parts = append(parts, style.Render(name))
	}
	return "  " + strings.Join(parts, " ")
}

func (s *WorkbenchScreen) renderQuestion(width int) string {
	if s.question == nil {
		return theme.Hint.Render("  No question loaded. Press 'o' to load a question image or PDF.")
	}

	var b strings.Builder
	q := s.question

	b.WriteString("  " + theme.Selected.Render(q.Title) + "\n\n")
	b.WriteString(s.renderMarkup(q.Description, width-4))
	b.WriteString("\n\n")
	b.WriteString("  " + theme.Body.Render(fmt.Sprintf("Total marks: %.5g", q.TotalMarks)))
	if q.HasRefImage() {
		b.WriteString(theme.Hint.Render("   (reference image attached)"))
	}
	b.WriteString("\n")

	if q.IdealSolution != "" {
		b.WriteString("\n  " + theme.Subtitle.Render("Ideal solution") + "\n")
		b.WriteString(s.renderMarkup(q.IdealSolution, width-4))
		b.WriteString("\n")
	} else {
		b.WriteString("\n" + theme.Hint.Render("  Press 's' to transcribe an ideal solution (optional)."))
	}

	return b.String()
}

func (s *WorkbenchScreen) renderSubmission(width int) string {
	var b strings.Builder
	b.WriteString(s.ed.View())
	if !s.ed.Focused() {
		b.WriteString("\n\n" + theme.Hint.Render("  Press Enter or 'i' to edit, Ctrl+O to transcribe a scan."))
	}
	return b.String()
}

func (s *WorkbenchScreen) renderPreview(width int) string {
	source := s.ed.Value()
	if strings.TrimSpace(source) == "" {
		return theme.Hint.Render("  Nothing to preview yet.")
	}
	if s.deps.Renderer == nil {
		return theme.Hint.Render("  Renderer unavailable.")
	}
	rendered := s.deps.Renderer.RenderDocument(source)
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func (s *WorkbenchScreen) renderResult(width int) string {
	if s.result == nil {
		return theme.Hint.Render("  No grading result yet. Press Ctrl+G to grade the submission.")
	}

	var b strings.Builder
	r := s.result

	scoreStyle := theme.Correct
	if r.Score < r.MaxScore/2 {
		scoreStyle = theme.Incorrect
	}
	header := fmt.Sprintf("Score: %.5g / %.5g", r.Score, r.MaxScore)
	if s.stale {
		header += "   " + theme.Hint.Render("(outdated, re-grading)")
	}
	b.WriteString("  " + scoreStyle.Render(header) + "\n\n")

	b.WriteString("  " + components.NewConfidenceBar("Confidence", r.Confidence, min(width-4, 48)).View() + "\n\n")

	b.WriteString("  " + theme.Selected.Render("Summary") + "\n")
	b.WriteString(s.renderMarkup(r.Summary, width-4) + "\n\n")

	b.WriteString("  " + theme.Selected.Render("Feedback") + "\n")
	b.WriteString(s.renderMarkup(r.Feedback, width-4) + "\n")

	if len(r.Mistakes) > 0 {
		b.WriteString("\n  " + theme.Selected.Render("Mistakes") + "\n")
		for i, m := range r.Mistakes {
			category := ""
			if i < len(r.MistakeTypes) {
				category = lipgloss.NewStyle().Foreground(theme.Accent).
					Render(" [" + r.MistakeTypes[i] + "]")
			}
			b.WriteString("  • " + s.renderMarkup(m, width-8) + category + "\n")
		}
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n  " + theme.Selected.Render("Suggestions") + "\n")
		for _, sg := range r.Suggestions {
			b.WriteString("  → " + s.renderMarkup(sg, width-8) + "\n")
		}
	}

	return b.String()
}

func (s *WorkbenchScreen) renderPalette() string {
	var b strings.Builder
	b.WriteString("  " + theme.Subtitle.Render("Symbol palette") + "\n")
	for i, sn := range latex.Snippets {
		line := fmt.Sprintf("%-16s %s", sn.Label, sn.Insert)
		if i == s.paletteSelected {
			b.WriteString("  " + theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + theme.Unselected.Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (s *WorkbenchScreen) renderStatus() string {
	var parts []string
	spinner := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	if s.state.Converting {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Secondary).
			Render("  "+spinner+" Converting..."))
	}
	if s.state.Grading {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Secondary).
			Render("  "+spinner+" Grading..."))
	}
	if s.state.ErrMsg != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Error).
			Render("  "+s.state.ErrMsg))
	}
	if s.exportNote != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).
			Render("  "+s.exportNote))
	}
	return strings.Join(parts, "\n")
}

// renderMarkup runs text through the math renderer, indented two spaces.
func (s *WorkbenchScreen) renderMarkup(text string, width int) string {
	rendered := text
	if s.deps.Renderer != nil {
		rendered = s.deps.Renderer.Render(text)
	}
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
