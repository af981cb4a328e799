package cmd

import (
	"os"

	"github.com/abhisek/quizdrill/internal/store"
	"github.com/spf13/cobra"
)

const defaultBankFile = "questions.json"

var rootCmd = &cobra.Command{
	Use:   "quizdrill",
	Short: "Terminal quiz drilling app",
	Long:  "Quizdrill — terminal app for drilling question banks: multiple choice, true/false, and fill-in questions with scoring, a review board, and wrong-answer reports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDRILL_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to question bank file (overrides QUIZDRILL_BANK env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBankPath returns the bank path using --bank, then QUIZDRILL_BANK,
// then questions.json in the working directory.
func resolveBankPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	if p := os.Getenv("QUIZDRILL_BANK"); p != "" {
		return p
	}
	return defaultBankFile
}
