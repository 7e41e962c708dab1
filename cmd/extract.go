package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/gradepad/internal/files"
	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/question"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract question context from an image or PDF (no database)",
	Long: `Read a question sheet and print the extracted title, description,
total marks, and ideal solution when one is visible.

This is a stateless tool — no database, no events.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	att, err := files.Load(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	ex := question.NewExtractor(provider, question.ConfigFromEnv())
	q, err := ex.Extract(ctx, att)
	if err != nil {
		return err
	}

	fmt.Printf("Title:       %s\n", q.Title)
	fmt.Printf("Total marks: %.5g\n", q.TotalMarks)
	fmt.Println()
	fmt.Println(q.Description)
	if q.IdealSolution != "" {
		fmt.Println()
		fmt.Println("── Ideal solution ──")
		fmt.Println(q.IdealSolution)
	}
	return nil
}
