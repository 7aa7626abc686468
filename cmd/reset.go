package cmd

import (
	"fmt"

	"github.com/abhisek/cogniplay/internal/difficulty"
	"github.com/abhisek/cogniplay/internal/store"
	"github.com/abhisek/cogniplay/internal/training"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset difficulty tracking, or set the level directly",
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

		if level, _ := cmd.Flags().GetInt("level"); level > 0 {
			change, err := manager.SetLevel(ctx, userID, level)
			if err != nil {
				return fmt.Errorf("set level: %w", err)
			}
			fmt.Printf("Difficulty level set to %d for %q.\n", change.NewLevel, userID)
			return nil
		}

		if err := manager.ResetTracking(ctx, userID); err != nil {
			return fmt.Errorf("reset tracking: %w", err)
		}
		fmt.Printf("Difficulty tracking reset for %q. Event history is retained.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().IntP("level", "l", 0, "Set the difficulty level (1-5) instead of resetting")
}
