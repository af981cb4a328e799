package cmd

import (
	"fmt"

	"github.com/abhisek/quizdrill/internal/bank"
	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a question bank file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveBankPath(cmd)
		if len(args) == 1 {
			path = args[0]
		}

		questions, err := bank.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		byKind := make(map[quiz.Kind]int)
		for _, q := range questions {
			byKind[q.Kind]++
		}

		fmt.Printf("%s: OK — %d questions\n", path, len(questions))
		for _, kind := range []quiz.Kind{quiz.SingleChoice, quiz.TrueFalse, quiz.FreeText} {
			if n := byKind[kind]; n > 0 {
				fmt.Printf("  %-16s %d\n", kind.Display(), n)
			}
		}
		return nil
	},
}
