package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradepad/internal/ui/theme"
)

// ConfidenceBar displays the grader's confidence as a horizontal bar.
// The fill color shifts with the level: green when the grader is sure,
// amber in the middle, red when the assessment is shaky.
type ConfidenceBar struct {
	Label      string
	Confidence float64 // in [0,1]
	Width      int
}

// NewConfidenceBar creates a confidence bar.
func NewConfidenceBar(label string, confidence float64, width int) ConfidenceBar {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return ConfidenceBar{
		Label:      label,
		Confidence: confidence,
		Width:      width,
	}
}

// View renders the bar.
func (c ConfidenceBar) View() string {
	var result string

	if c.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(c.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // " 100%"

	barWidth := c.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * c.Confidence)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := theme.Success
	switch {
	case c.Confidence < 0.4:
		fill = theme.Error
	case c.Confidence < 0.7:
		fill = theme.Accent
	}

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(c.Confidence*100)))

	return result
}
