package cmd

import (
	"github.com/abhisek/gradepad/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gradepad",
	Short: "Assisted grading for handwritten math",
	Long:  "GradePad — terminal workbench for transcribing and grading handwritten math submissions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRADEPAD_DB env var)")

	rootCmd.AddCommand(refineCmd)
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GRADEPAD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
