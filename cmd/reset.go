package cmd

import (
	"fmt"

	"github.com/abhisek/quizdrill/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all drill history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := store.Reset(s.DB()); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}

		fmt.Println("Drill history cleared.")
		return nil
	},
}
