package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizdrill/internal/app"
	"github.com/abhisek/quizdrill/internal/bank"
	"github.com/abhisek/quizdrill/internal/llm"
	"github.com/abhisek/quizdrill/internal/review"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads the bank, opens the store, builds dependencies, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	bankPath := resolveBankPath(cmd)
	questions, err := bank.Load(bankPath)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Session: session.New(questions, uuid.NewString()),
		Events:  st.EventRepo(),
	}

	// LLM provider is optional; the app works without explanations.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Answer explanations will be unavailable.")
	} else {
		opts.Review = review.NewService(provider, review.DefaultConfig())
	}

	return app.Run(opts)
}
