package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/transcribe"
	"github.com/spf13/cobra"
)

var refineCmd = &cobra.Command{
	Use:   "refine [text]",
	Short: "Clean up math markup in typed text (no database)",
	Long: `Normalize delimiters and convert plain-text math notation to LaTeX.

Reads the text argument, or standard input when no argument is given.
This is a stateless tool — no database, no events.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRefine,
}

func runRefine(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no input text")
	}

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := transcribe.NewService(provider, transcribe.DefaultConfig())
	out, err := svc.Refine(ctx, text)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
