package workbench

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradepad/internal/editor"
	"github.com/abhisek/gradepad/internal/files"
	"github.com/abhisek/gradepad/internal/grading"
	"github.com/abhisek/gradepad/internal/latex"
	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/question"
	"github.com/abhisek/gradepad/internal/router"
	"github.com/abhisek/gradepad/internal/screen"
	"github.com/abhisek/gradepad/internal/store"
	"github.com/abhisek/gradepad/internal/transcribe"
	"github.com/abhisek/gradepad/internal/ui/components"
	"github.com/abhisek/gradepad/internal/ui/layout"
)

// debounceWindow is the quiescence period after the last edit before
// re-grading fires.
const debounceWindow = 1500 * time.Millisecond

const pollInterval = 100 * time.Millisecond

// Tab identifies one workbench pane.
type Tab int

const (
	TabQuestion Tab = iota
	TabSubmission
	TabPreview
	TabResult
)

var tabNames = []string{"Question", "Submission", "Preview", "Result"}

// inputMode says what the path prompt, when open, is asking for.
type inputMode int

const (
	inputNone inputMode = iota
	inputQuestionFile
	inputSolutionFile
	inputSubmissionFile
)

// ProcessingState tracks in-flight operations and the last error.
type ProcessingState struct {
	Converting bool
	Grading    bool
	ErrMsg     string
}

// Deps bundles the services the workbench needs.
type Deps struct {
	Provider     llm.Provider
	Extractor    *question.Extractor
	Transcriber  *transcribe.Service
	Grader       *grading.Service
	Renderer     *latex.Renderer
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
}

// WorkbenchScreen is the grading workbench: question context, LaTeX
// submission editor, rendered preview, and the grading result.
type WorkbenchScreen struct {
	deps Deps

	tab      Tab
	ed       editor.Editor
	question *question.Context
	solution string

	result *grading.Result
	stale  bool
	state  ProcessingState

	// editGen identifies the most recent edit; debounce messages from
	// older generations are ignored.
	editGen      int
	lastGradedAt string

	mode      inputMode
	pathInput components.TextInput

	paletteOpen     bool
	paletteSelected int

	spinnerFrame int
	exportNote   string

	width  int
	height int
}

var _ screen.Screen = (*WorkbenchScreen)(nil)
var _ screen.KeyHintProvider = (*WorkbenchScreen)(nil)

// New creates a workbench screen.
func New(deps Deps) *WorkbenchScreen {
	return &WorkbenchScreen{
		deps: deps,
		tab:  TabQuestion,
		ed:   editor.New(80, 20),
	}
}

// Restore creates a workbench pre-filled from a saved snapshot.
func Restore(deps Deps, snap *store.Snapshot) *WorkbenchScreen {
	s := New(deps)
	if snap == nil {
		return s
	}
	s.question = &question.Context{
		ID:            snap.Data.QuestionID,
		Title:         snap.Data.Title,
		Description:   snap.Data.Description,
		TotalMarks:    snap.Data.TotalMarks,
		IdealSolution: snap.Data.IdealSolution,
	}
	s.ed.SetValue(snap.Data.Source)
	s.tab = TabSubmission
	return s
}

func (s *WorkbenchScreen) Init() tea.Cmd {
	return nil
}

func (s *WorkbenchScreen) Title() string {
	if s.question != nil && s.question.Title != "" {
		return s.question.Title
	}
	return "Workbench"
}

func (s *WorkbenchScreen) KeyHints() []layout.KeyHint {
	if s.mode != inputNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.paletteOpen {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Insert"},
			{Key: "Esc", Description: "Close"},
		}
	}
	switch s.tab {
	case TabSubmission:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next pane"},
			{Key: "Ctrl+O", Description: "Transcribe file"},
			{Key: "Ctrl+R", Description: "Refine"},
			{Key: "Ctrl+P", Description: "Palette"},
			{Key: "Ctrl+G", Description: "Grade"},
			{Key: "Ctrl+E", Description: "Export"},
		}
	case TabQuestion:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next pane"},
			{Key: "o", Description: "Load question"},
			{Key: "s", Description: "Load solution"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next pane"},
			{Key: "Ctrl+G", Description: "Grade"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *WorkbenchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.ed.SetSize(msg.Width-6, layout.ContentHeight(msg.Height)-6)
		return s, nil

	case questionReadyMsg:
		s.state.Converting = false
		if msg.Err != nil {
			s.state.ErrMsg = userMessage(msg.Err)
			return s, nil
		}
		s.state.ErrMsg = ""
		s.question = msg.Question
		return s, s.saveSnapshot()

	case solutionReadyMsg:
		s.state.Converting = false
		if msg.Err != nil {
			s.state.ErrMsg = userMessage(msg.Err)
			return s, nil
		}
		s.state.ErrMsg = ""
		s.solution = msg.Text
		if s.question != nil {
			s.question.IdealSolution = msg.Text
		}
		return s, s.saveSnapshot()

	case documentReadyMsg:
		s.state.Converting = false
		if msg.Err != nil {
			s.state.ErrMsg = userMessage(msg.Err)
			return s, nil
		}
		s.state.ErrMsg = ""
		s.ed.SetValue(msg.Source)
		s.tab = TabSubmission
		return s, tea.Batch(s.markEdited(), s.saveSnapshot())

	case refineDoneMsg:
		s.state.Converting = false
		if msg.Err != nil {
			s.state.ErrMsg = userMessage(msg.Err)
			return s, nil
		}
		s.state.ErrMsg = ""
		s.ed.SetValue(msg.Text)
		return s, s.markEdited()

	case debounceMsg:
		if msg.Gen != s.editGen {
			return s, nil
		}
		return s, s.startGrading()

	case gradePollMsg:
		return s.pollGrading()

	case spinnerTickMsg:
		if !s.state.Converting && !s.state.Grading {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case gradePersistedMsg:
		if msg.Err != nil {
			s.state.ErrMsg = fmt.Sprintf("save grading: %v", msg.Err)
		}
		return s, nil

	case exportDoneMsg:
		if msg.Err != nil {
			s.state.ErrMsg = userMessage(msg.Err)
		} else {
			s.exportNote = "Exported to " + msg.Path
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode != inputNone {
		var cmd tea.Cmd
		s.pathInput, cmd = s.pathInput.Update(msg)
		return s, cmd
	}
	if s.tab == TabSubmission && s.ed.Focused() {
		var cmd tea.Cmd
		s.ed, cmd = s.ed.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *WorkbenchScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Path prompt swallows everything while open.
	if s.mode != inputNone {
		switch key {
		case "esc":
			s.mode = inputNone
			return s, nil
		case "enter":
			path := s.pathInput.Value()
			mode := s.mode
			s.mode = inputNone
			if path == "" {
				return s, nil
			}
			return s, s.loadFile(mode, path)
		}
		var cmd tea.Cmd
		s.pathInput, cmd = s.pathInput.Update(msg)
		return s, cmd
	}

	if s.paletteOpen {
		switch key {
		case "esc":
			s.paletteOpen = false
			return s, nil
		case "up", "k":
			if s.paletteSelected > 0 {
				s.paletteSelected--
			}
			return s, nil
		case "down", "j":
			if s.paletteSelected < len(latex.Snippets)-1 {
				s.paletteSelected++
			}
			return s, nil
		case "enter":
			s.ed.InsertSnippet(latex.Snippets[s.paletteSelected])
			s.paletteOpen = false
			return s, s.markEdited()
		}
		return s, nil
	}

	switch key {
	case "tab":
		if s.tab == TabSubmission && s.ed.Focused() {
			// The editor consumes tab for autocomplete acceptance.
			break
		}
		s.tab = (s.tab + 1) % Tab(len(tabNames))
		return s, s.enterTab()
	case "shift+tab":
		s.tab = (s.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return s, s.enterTab()
	case "ctrl+g":
		return s, s.startGrading()
	case "ctrl+e":
		return s, s.export()
	}

	switch s.tab {
	case TabQuestion:
		switch key {
		case "o":
			return s, s.openPathPrompt(inputQuestionFile, "Path to question image or PDF")
		case "s":
			return s, s.openPathPrompt(inputSolutionFile, "Path to ideal solution image or PDF")
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case TabSubmission:
		switch key {
		case "ctrl+o":
			return s, s.openPathPrompt(inputSubmissionFile, "Path to submission image or PDF")
		case "ctrl+r":
			return s, s.refine()
		case "ctrl+p":
			s.paletteOpen = true
			s.paletteSelected = 0
			return s, nil
		case "esc":
			if s.ed.Focused() {
				s.ed.Blur()
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if !s.ed.Focused() {
				return s, s.ed.Focus()
			}
		}
		if s.ed.Focused() {
			before := s.ed.Value()
			var cmd tea.Cmd
			s.ed, cmd = s.ed.Update(msg)
			if s.ed.Value() != before {
				return s, tea.Batch(cmd, s.markEdited())
			}
			return s, cmd
		}
		if key == "i" {
			return s, s.ed.Focus()
		}

	default:
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

// enterTab adjusts focus when switching panes.
func (s *WorkbenchScreen) enterTab() tea.Cmd {
	if s.tab == TabSubmission {
		return s.ed.Focus()
	}
	s.ed.Blur()
	return nil
}

func (s *WorkbenchScreen) openPathPrompt(mode inputMode, placeholder string) tea.Cmd {
	s.mode = mode
	s.pathInput = components.NewTextInput(placeholder, false, 0)
	return s.pathInput.Init()
}

// markEdited bumps the edit generation, flags the current result as
// stale, and schedules a debounced re-grade.
func (s *WorkbenchScreen) markEdited() tea.Cmd {
	s.editGen++
	gen := s.editGen
	if s.result != nil {
		s.stale = true
	}
	s.exportNote = ""
	return tea.Tick(debounceWindow, func(time.Time) tea.Msg {
		return debounceMsg{Gen: gen}
	})
}

func (s *WorkbenchScreen) loadFile(mode inputMode, path string) tea.Cmd {
	if s.deps.Provider == nil {
		s.state.ErrMsg = "No LLM provider configured. Set GEMINI_API_KEY or another provider key."
		return nil
	}
	att, err := files.Load(path)
	if err != nil {
		s.state.ErrMsg = err.Error()
		return nil
	}
	s.state.Converting = true
	s.state.ErrMsg = ""

	switch mode {
	case inputQuestionFile:
		return tea.Batch(spinnerTick(), func() tea.Msg {
			q, err := s.deps.Extractor.Extract(context.Background(), att)
			if err == nil {
				q.RefImage = &att
			}
			return questionReadyMsg{Question: q, Err: err}
		})
	case inputSolutionFile:
		return tea.Batch(spinnerTick(), func() tea.Msg {
			text, err := s.deps.Transcriber.Solution(context.Background(), att)
			return solutionReadyMsg{Text: text, Err: err}
		})
	default:
		return tea.Batch(spinnerTick(), func() tea.Msg {
			src, err := s.deps.Transcriber.ToDocument(context.Background(), att)
			return documentReadyMsg{Source: src, Err: err}
		})
	}
}

func (s *WorkbenchScreen) refine() tea.Cmd {
	if s.deps.Provider == nil {
		s.state.ErrMsg = "No LLM provider configured."
		return nil
	}
	text := s.ed.Value()
	s.state.Converting = true
	s.state.ErrMsg = ""
	return tea.Batch(spinnerTick(), func() tea.Msg {
		out, err := s.deps.Transcriber.Refine(context.Background(), text)
		return refineDoneMsg{Text: out, Err: err}
	})
}

// startGrading issues a sequence-numbered grading request and begins
// polling for its completion.
func (s *WorkbenchScreen) startGrading() tea.Cmd {
	if s.deps.Provider == nil || s.deps.Grader == nil {
		return nil
	}
	if s.question == nil {
		s.state.ErrMsg = "Load a question before grading."
		return nil
	}
	source := s.ed.Value()
	if source == "" || source == s.lastGradedAt {
		return nil
	}
	s.lastGradedAt = source
	s.state.Grading = true
	if s.result != nil {
		s.stale = true
	}
	s.deps.Grader.Request(context.Background(), grading.Input{
		Source:   source,
		Question: *s.question,
	})
	return tea.Batch(spinnerTick(), pollTick())
}

// pollGrading consumes the grading service's pending outcome, if any.
// Outcomes for superseded requests never surface here; the service
// already discarded them.
func (s *WorkbenchScreen) pollGrading() (screen.Screen, tea.Cmd) {
	if !s.state.Grading {
		return s, nil
	}
	out, ok := s.deps.Grader.Consume()
	if !ok {
		return s, pollTick()
	}
	s.state.Grading = false
	if out.Err != nil {
		// The previous result stays on screen; only the error slot updates.
		s.state.ErrMsg = userMessage(out.Err)
		return s, nil
	}
	s.state.ErrMsg = ""
	s.result = out.Result
	s.stale = false
	return s, s.persistGrading(out.Result)
}

func (s *WorkbenchScreen) persistGrading(res *grading.Result) tea.Cmd {
	if s.deps.EventRepo == nil || s.question == nil {
		return nil
	}
	q := *s.question
	source := s.lastGradedAt
	return func() tea.Msg {
		err := s.deps.EventRepo.AppendGrading(context.Background(), store.GradingEventData{
			QuestionID:    q.ID,
			QuestionTitle: q.Title,
			Source:        source,
			Score:         res.Score,
			MaxScore:      res.MaxScore,
			Summary:       res.Summary,
			Feedback:      res.Feedback,
			Mistakes:      res.Mistakes,
			MistakeTypes:  res.MistakeTypes,
			Confidence:    res.Confidence,
			Suggestions:   res.Suggestions,
		})
		return gradePersistedMsg{Err: err}
	}
}

func (s *WorkbenchScreen) saveSnapshot() tea.Cmd {
	if s.deps.SnapshotRepo == nil || s.question == nil {
		return nil
	}
	data := store.SnapshotData{
		Version:       1,
		QuestionID:    s.question.ID,
		Title:         s.question.Title,
		Description:   s.question.Description,
		TotalMarks:    s.question.TotalMarks,
		IdealSolution: s.question.IdealSolution,
		Source:        s.ed.Value(),
	}
	repo := s.deps.SnapshotRepo
	return func() tea.Msg {
		ctx := context.Background()
		_ = repo.Save(ctx, &store.Snapshot{Timestamp: time.Now().UTC(), Data: data})
		_ = repo.Prune(ctx, 5)
		return nil
	}
}

func (s *WorkbenchScreen) export() tea.Cmd {
	source := s.ed.Value()
	if source == "" {
		s.state.ErrMsg = "Nothing to export."
		return nil
	}
	title := "submission"
	if s.question != nil && s.question.Title != "" {
		title = s.question.Title
	}
	return func() tea.Msg {
		path, err := files.Export(".", title, source)
		return exportDoneMsg{Path: path, Err: err}
	}
}

// userMessage maps an error to what the footer error slot shows.
// Exhausted retries carry their own user-facing phrasing.
func userMessage(err error) string {
	var exhausted *llm.ErrRetriesExhausted
	if errors.As(err, &exhausted) {
		return exhausted.UserMessage()
	}
	return err.Error()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return gradePollMsg(t)
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
