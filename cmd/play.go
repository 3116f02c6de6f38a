package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/meera/lingua/internal/app"
	"github.com/meera/lingua/internal/content"
	"github.com/meera/lingua/internal/hints"
	"github.com/meera/lingua/internal/llm"
	"github.com/meera/lingua/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice run",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	questions := content.Builtin()
	if bankPath, _ := cmd.Flags().GetString("bank"); bankPath != "" {
		loaded, err := content.LoadBank(bankPath)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		questions = loaded
	}

	deck := content.NewDeck(questions)
	deck.Shuffle(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	opts := app.Options{Deck: deck}

	// The store is for event logging; play still works without it.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "store unavailable, progress will not be recorded:", err)
	} else {
		defer st.Close()
		repo, err := st.EventRepo()
		if err != nil {
			fmt.Fprintln(os.Stderr, "store unavailable, progress will not be recorded:", err)
		} else {
			opts.EventRepo = repo
		}
	}

	// The LLM provider is optional too; hints fall back to the answer key.
	provider, err := llm.NewProviderFromEnv(ctx, opts.EventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI hints will be unavailable.")
		opts.Hints = hints.NewService(nil, hints.DefaultConfig())
	} else {
		opts.Hints = hints.NewService(provider, hints.DefaultConfig())
	}

	return app.Run(opts)
}
