package cmd

import (
	"fmt"

	"github.com/abhisek/cogniplay/internal/difficulty"
	"github.com/abhisek/cogniplay/internal/report"
	"github.com/abhisek/cogniplay/internal/store"
	"github.com/abhisek/cogniplay/internal/training"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current difficulty level and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		userID := resolveUserID(cmd)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		manager := training.NewManager(difficulty.DefaultConfig(), st.EventRepo(), st.TrackingRepo())
		prog, err := manager.Progress(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		reporter := report.NewReporter(st.EventRepo(), report.DefaultConfig())
		qs, err := reporter.QuickStats(ctx, userID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Profile:          %s\n", userID)
		fmt.Printf("Difficulty level: %d/5\n", prog.Level)
		if prog.Direction != "" {
			fmt.Printf("Streak:           %d of %d toward a level-%s\n",
				prog.CurrentStreak, prog.Required, prog.Direction)
		}

		fmt.Println()
		fmt.Println("Last 7 days")
		fmt.Printf("  Exercises:  %d\n", qs.Exercises)
		fmt.Printf("  Scenarios:  %d\n", qs.Scenarios)
		if qs.AverageScore != nil {
			fmt.Printf("  Average:    %.1f\n", *qs.AverageScore)
		} else {
			fmt.Println("  Average:    no activity recorded")
		}
		if qs.BestCategory != "" {
			fmt.Printf("  Best:       %s (%.1f)\n", qs.BestCategory, qs.BestScore)
		}
		return nil
	},
}
