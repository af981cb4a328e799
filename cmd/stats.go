package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/quizdrill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drill history statistics",
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

		ctx := context.Background()
		overview, err := s.StatsRepo().Overview(ctx)
		if err != nil {
			return fmt.Errorf("query overview: %w", err)
		}

		if overview.Sessions == 0 && overview.Answered == 0 {
			fmt.Println("No drill history yet. Run quizdrill play to start.")
			return nil
		}

		fmt.Println("Drill History")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Sessions:      %d\n", overview.Sessions)
		fmt.Printf("Answered:      %d\n", overview.Answered)
		fmt.Printf("Correct:       %d\n", overview.Correct)
		fmt.Printf("Accuracy:      %.0f%%\n", overview.Accuracy()*100)
		fmt.Printf("Best score:    %d\n", overview.BestScore)
		fmt.Printf("Reports saved: %d\n", overview.Exports)

		kinds, err := s.StatsRepo().KindBreakdown(ctx)
		if err != nil {
			return fmt.Errorf("query kind breakdown: %w", err)
		}
		if len(kinds) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("By Question Kind")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-16s  %8s  %8s  %8s\n", "Kind", "Answered", "Correct", "Accuracy")
		for _, k := range kinds {
			acc := 0.0
			if k.Answered > 0 {
				acc = float64(k.Correct) / float64(k.Answered) * 100
			}
			fmt.Printf("%-16s  %8d  %8d  %7.0f%%\n", k.Kind, k.Answered, k.Correct, acc)
		}
		return nil
	},
}
