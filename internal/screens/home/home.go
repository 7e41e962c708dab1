package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradepad/internal/router"
	"github.com/abhisek/gradepad/internal/screen"
	"github.com/abhisek/gradepad/internal/screens/history"
	"github.com/abhisek/gradepad/internal/screens/workbench"
	"github.com/abhisek/gradepad/internal/store"
	"github.com/abhisek/gradepad/internal/ui/components"
	"github.com/abhisek/gradepad/internal/ui/theme"
)

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu       components.Menu
	lastTitle  string
	hasHistory bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The latest snapshot, when present,
// enables the resume entry and names the session it restores.
func New(deps workbench.Deps) *HomeScreen {
	var snap *store.Snapshot
	if deps.SnapshotRepo != nil {
		snap, _ = deps.SnapshotRepo.Latest(context.Background())
	}

	var lastTitle string
	if snap != nil {
		lastTitle = snap.Data.Title
		if lastTitle == "" {
			lastTitle = "untitled session"
		}
	}

	items := []components.MenuItem{
		{Label: "New grading session", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: workbench.New(deps)}
			}
		}},
	}

	if snap != nil {
		resumed := snap
		items = append(items, components.MenuItem{
			Label: "Resume last session",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: workbench.Restore(deps, resumed)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.EventRepo)}
			}
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:       components.NewMenu(items),
		lastTitle:  lastTitle,
		hasHistory: deps.EventRepo != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("GradePad"))
	sections = append(sections, theme.Subtitle.Render("Assisted grading for handwritten math"))

	if h.lastTitle != "" {
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("Last session: %s", h.lastTitle)))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
