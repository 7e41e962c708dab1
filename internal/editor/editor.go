package editor

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradepad/internal/latex"
	"github.com/abhisek/gradepad/internal/ui/theme"
)

var (
	lineNumStyle    = lipgloss.NewStyle().Foreground(theme.TextDim)
	suggestionStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	suggestSelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
)

// Editor is the LaTeX source editor: a textarea with line numbers,
// command autocompletion, and snippet insertion from the symbol
// palette. While the editor is blurred its content is shown with
// syntax highlighting; the editable view stays plain.
type Editor struct {
	ta textarea.Model

	// Autocomplete state for the partial command under the caret.
	suggestions []string
	selected    int
}

// New creates an editor sized to the given dimensions.
func New(width, height int) Editor {
	ta := textarea.New()
	ta.Placeholder = "Type or paste the LaTeX submission..."
	ta.ShowLineNumbers = true
	ta.SetWidth(width)
	ta.SetHeight(height)
	return Editor{ta: ta}
}

// Init returns nil (no initial command).
func (e Editor) Init() tea.Cmd {
	return nil
}

// Update handles input. When suggestions are open, navigation and
// acceptance keys are consumed here instead of reaching the textarea.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && len(e.suggestions) > 0 {
		switch kmsg.String() {
		case "up":
			if e.selected > 0 {
				e.selected--
			}
			return e, nil
		case "down":
			if e.selected < len(e.suggestions)-1 {
				e.selected++
			}
			return e, nil
		case "tab", "enter":
			e.accept()
			return e, nil
		case "esc":
			e.suggestions = nil
			return e, nil
		}
	}

	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	e.refreshSuggestions()
	return e, cmd
}

// View renders the editor. Blurred content is re-rendered with syntax
// highlighting; the focused textarea is shown as-is so the caret and
// selection behave normally.
func (e Editor) View() string {
	if e.ta.Focused() {
		view := e.ta.View()
		if len(e.suggestions) > 0 {
			view += "\n" + e.suggestionBar()
		}
		return view
	}
	return e.highlightedView()
}

// Focus gives the textarea input focus.
func (e *Editor) Focus() tea.Cmd {
	return e.ta.Focus()
}

// Blur removes input focus and dismisses any open suggestions.
func (e *Editor) Blur() {
	e.ta.Blur()
	e.suggestions = nil
}

// Focused reports whether the textarea has input focus.
func (e Editor) Focused() bool {
	return e.ta.Focused()
}

// Value returns the current source.
func (e Editor) Value() string {
	return e.ta.Value()
}

// SetValue replaces the source and dismisses suggestions.
func (e *Editor) SetValue(s string) {
	e.ta.SetValue(s)
	e.suggestions = nil
}

// SetSize resizes the textarea.
func (e *Editor) SetSize(width, height int) {
	e.ta.SetWidth(width)
	e.ta.SetHeight(height)
}

// InsertSnippet inserts palette source at the caret. The caret ends up
// after the inserted text.
func (e *Editor) InsertSnippet(s latex.Snippet) {
	e.ta.InsertString(s.Insert)
	e.refreshSuggestions()
}

// caret returns the cursor's row and column within the source.
func (e Editor) caret() (row, col int) {
	li := e.ta.LineInfo()
	return e.ta.Line(), li.StartColumn + li.ColumnOffset
}

func (e Editor) currentLine() string {
	lines := strings.Split(e.ta.Value(), "\n")
	row, _ := e.caret()
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

func (e *Editor) refreshSuggestions() {
	_, col := e.caret()
	_, matches := suggest(e.currentLine(), col)
	e.suggestions = matches
	if e.selected >= len(matches) {
		e.selected = 0
	}
}

// accept replaces from the opening backslash to the caret with the
// selected command and repositions the caret after it.
func (e *Editor) accept() {
	row, col := e.caret()
	line := e.currentLine()
	start, matches := suggest(line, col)
	if start < 0 || e.selected >= len(matches) {
		e.suggestions = nil
		return
	}
	chosen := matches[e.selected]

	lines := strings.Split(e.ta.Value(), "\n")
	lines[row] = line[:start] + "\\" + chosen + line[col:]

	e.ta.SetValue(strings.Join(lines, "\n"))
	e.moveTo(row, start+1+len(chosen))
	e.suggestions = nil
	e.selected = 0
}

// moveTo places the caret at (row, col). SetValue leaves the caret at
// the end of input, so navigate from the top.
func (e *Editor) moveTo(row, col int) {
	e.ta.MoveToBegin()
	for i := 0; i < row; i++ {
		e.ta.CursorDown()
	}
	e.ta.CursorStart()
	e.ta.SetCursorColumn(col)
}

func (e Editor) suggestionBar() string {
	var parts []string
	for i, s := range e.suggestions {
		if i == e.selected {
			parts = append(parts, suggestSelStyle.Render("\\"+s))
		} else {
			parts = append(parts, suggestionStyle.Render("\\"+s))
		}
		if len(parts) >= 8 {
			break
		}
	}
	return strings.Join(parts, "  ")
}

// highlightedView renders the source read-only with line numbers and
// LaTeX syntax colors.
func (e Editor) highlightedView() string {
	lines := strings.Split(e.ta.Value(), "\n")
	width := len(fmt.Sprintf("%d", len(lines)))
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(lineNumStyle.Render(fmt.Sprintf("%*d ", width, i+1)))
		b.WriteString(latex.Highlight(line))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
