package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/gradepad/internal/app"
	"github.com/abhisek/gradepad/internal/grading"
	"github.com/abhisek/gradepad/internal/latex"
	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/question"
	"github.com/abhisek/gradepad/internal/screens/workbench"
	"github.com/abhisek/gradepad/internal/store"
	"github.com/abhisek/gradepad/internal/transcribe"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	deps := workbench.Deps{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		Renderer:     latex.NewRenderer(latex.NewTerminal()),
	}

	opts := app.Options{}
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Transcription and grading will be unavailable.")
	} else {
		deps.Provider = provider
		deps.Extractor = question.NewExtractor(provider, question.ConfigFromEnv())
		deps.Transcriber = transcribe.NewService(provider, transcribe.DefaultConfig())
		deps.Grader = grading.NewService(provider, grading.DefaultConfig())
		opts.ModelID = provider.ModelID()
	}
	opts.Deps = deps

	return app.Run(opts)
}
