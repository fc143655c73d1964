package cmd

import (
	"github.com/rustyeddy/papertrader/console"
	"github.com/rustyeddy/papertrader/grades"
	"github.com/spf13/cobra"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Start the interactive student grade tracker",
	Long: `Track students and their grades from a numbered menu. The registry
lives in memory for the length of the session.`,
	Args: cobra.NoArgs,
	RunE: runGrades,
}

func init() {
	rootCmd.AddCommand(gradesCmd)
}

func runGrades(cmd *cobra.Command, args []string) error {
	return console.NewGradeShell(cmd.OutOrStdout(), cmd.InOrStdin(), grades.NewRegistry()).Run()
}
