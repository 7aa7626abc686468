package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/cogniplay/internal/report"
	"github.com/abhisek/cogniplay/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a progress report over a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days < 1 {
			return fmt.Errorf("--days must be at least 1")
		}

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

		reporter := report.NewReporter(st.EventRepo(), report.DefaultConfig())
		rep, err := reporter.Report(ctx, userID, days)
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}

		fmt.Printf("Progress report — last %d days (%s)\n", rep.PeriodDays, userID)
		fmt.Println(strings.Repeat("─", 50))

		fmt.Printf("Exercises: %d   Scenarios: %d\n", rep.TotalExercises, rep.TotalScenarios)
		if rep.OverallAverage != nil {
			fmt.Printf("Average score: %.1f   Trend: %s\n", *rep.OverallAverage, rep.Trend)
		} else {
			fmt.Println("No activity in this period.")
			return nil
		}

		if len(rep.Categories) > 0 {
			fmt.Println()
			fmt.Printf("%-28s  %6s  %8s\n", "Category", "Count", "Average")
			fmt.Println(strings.Repeat("─", 50))
			for _, c := range rep.Categories {
				fmt.Printf("%-28s  %6d  %8.1f\n", c.Name, c.Count, c.AverageScore)
			}
		}

		if len(rep.Strengths) > 0 {
			fmt.Println()
			fmt.Println("Strengths:  " + strings.Join(rep.Strengths, ", "))
		}
		if len(rep.Weaknesses) > 0 {
			fmt.Println("Weaknesses: " + strings.Join(rep.Weaknesses, ", "))
		}

		if len(rep.Recommendations) > 0 {
			fmt.Println()
			fmt.Println("Recommendations:")
			for _, r := range rep.Recommendations {
				fmt.Println("  - " + r)
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().IntP("days", "d", 30, "Report period in days")
}
