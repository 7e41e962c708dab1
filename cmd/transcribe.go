package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/gradepad/internal/files"
	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/transcribe"
	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe a scanned submission to a LaTeX document (no database)",
	Long: `Convert a handwritten or typed submission image or PDF into compilable
LaTeX source, printed to standard output.

This is a stateless tool — no database, no events.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	att, err := files.Load(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := transcribe.NewService(provider, transcribe.DefaultConfig())
	src, err := svc.ToDocument(ctx, att)
	if err != nil {
		return err
	}
	fmt.Println(src)
	return nil
}
