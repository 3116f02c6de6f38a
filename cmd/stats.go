package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meera/lingua/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("runs")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		ctx := context.Background()

		breakdown, err := repo.VariantBreakdown(ctx)
		if err != nil {
			return fmt.Errorf("query variant breakdown: %w", err)
		}
		if len(breakdown) == 0 {
			fmt.Println("No practice recorded yet. Run `lingua play` first.")
			return nil
		}

		fmt.Println("Accuracy by Exercise Type")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-22s  %9s  %9s  %9s\n", "Type", "Answered", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 64))
		for _, v := range breakdown {
			fmt.Printf("%-22s  %9d  %9d  %8.0f%%\n",
				v.Variant, v.Attempted, v.Correct, v.Accuracy()*100)
		}

		points, err := repo.TotalPoints(ctx)
		if err != nil {
			return fmt.Errorf("query points: %w", err)
		}
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("Total points earned: %d\n", points)

		runs, err := repo.RecentRuns(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) > 0 {
			fmt.Println()
			fmt.Println("Recent Runs")
			fmt.Println(strings.Repeat("─", 64))
			fmt.Printf("%-19s  %9s  %9s  %8s  %8s\n",
				"When", "Answered", "Correct", "Points", "Time")
			fmt.Println(strings.Repeat("─", 64))
			for _, r := range runs {
				fmt.Printf("%-19s  %9d  %9d  %8d  %7ds\n",
					r.Timestamp.Local().Format("2006-01-02 15:04:05"),
					r.QuestionsServed, r.CorrectAnswers, r.PointsEarned, r.DurationSecs)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("runs", "n", 10, "Number of recent runs to show")
}
