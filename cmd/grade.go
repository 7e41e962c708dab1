package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/gradepad/internal/files"
	"github.com/abhisek/gradepad/internal/grading"
	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/question"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <submission.tex>",
	Short: "Grade a LaTeX submission against a question (no database)",
	Long: `Grade the LaTeX source in the given file. The question comes either
from --question (an image or PDF to extract) or from --title, --marks,
and --description given directly.

This is a stateless tool — no database, no events.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().String("question", "", "Path to question image or PDF")
	gradeCmd.Flags().String("title", "", "Question title")
	gradeCmd.Flags().Float64("marks", 0, "Total marks available")
	gradeCmd.Flags().String("description", "", "Question statement")
	gradeCmd.Flags().String("solution", "", "Path to an ideal solution text file")
}

func runGrade(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}
	if strings.TrimSpace(string(source)) == "" {
		return fmt.Errorf("submission %s is empty", args[0])
	}

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	q, err := gradeQuestion(ctx, cmd, provider)
	if err != nil {
		return err
	}

	svc := grading.NewService(provider, grading.DefaultConfig())
	res, err := svc.Grade(ctx, grading.Input{
		Source:   string(source),
		Question: *q,
	})
	if err != nil {
		return err
	}

	printResult(res)
	return nil
}

// gradeQuestion builds the question context from --question or from the
// manual flags.
func gradeQuestion(ctx context.Context, cmd *cobra.Command, provider llm.Provider) (*question.Context, error) {
	if path, _ := cmd.Flags().GetString("question"); path != "" {
		att, err := files.Load(path)
		if err != nil {
			return nil, err
		}
		ex := question.NewExtractor(provider, question.ConfigFromEnv())
		q, err := ex.Extract(ctx, att)
		if err != nil {
			return nil, err
		}
		q.RefImage = &att
		return q, nil
	}

	title, _ := cmd.Flags().GetString("title")
	marks, _ := cmd.Flags().GetFloat64("marks")
	description, _ := cmd.Flags().GetString("description")
	if description == "" || marks <= 0 {
		return nil, fmt.Errorf("provide --question, or --description and --marks")
	}

	q := &question.Context{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		TotalMarks:  marks,
	}
	if solPath, _ := cmd.Flags().GetString("solution"); solPath != "" {
		sol, err := os.ReadFile(solPath)
		if err != nil {
			return nil, fmt.Errorf("read solution: %w", err)
		}
		q.IdealSolution = string(sol)
	}
	return q, nil
}

func printResult(res *grading.Result) {
	sep := strings.Repeat("─", 60)

	fmt.Printf("Score:      %.5g / %.5g\n", res.Score, res.MaxScore)
	fmt.Printf("Confidence: %.0f%%\n", res.Confidence*100)
	fmt.Println()
	fmt.Println(res.Summary)

	fmt.Println()
	fmt.Println(sep)
	fmt.Println("FEEDBACK")
	fmt.Println(sep)
	fmt.Println(res.Feedback)

	if len(res.Mistakes) > 0 {
		fmt.Println()
		fmt.Println(sep)
		fmt.Println("MISTAKES")
		fmt.Println(sep)
		for i, m := range res.Mistakes {
			category := ""
			if i < len(res.MistakeTypes) {
				category = " [" + res.MistakeTypes[i] + "]"
			}
			fmt.Printf("• %s%s\n", m, category)
		}
	}

	if len(res.Suggestions) > 0 {
		fmt.Println()
		fmt.Println(sep)
		fmt.Println("SUGGESTIONS")
		fmt.Println(sep)
		for _, s := range res.Suggestions {
			fmt.Printf("→ %s\n", s)
		}
	}
}
