package cmd

import (
	"os"

	"github.com/abhisek/cogniplay/internal/store"
	"github.com/abhisek/cogniplay/internal/training"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cogniplay",
	Short: "Adaptive cognitive training in the terminal",
	Long:  "Cogniplay — cognitive exercises and AI role-playing scenarios that adapt to your performance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrain(cmd, training.SessionFull)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COGNIPLAY_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile name (overrides COGNIPLAY_USER env var)")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COGNIPLAY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the profile name: --user flag, then COGNIPLAY_USER,
// then the single-user default.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("COGNIPLAY_USER"); u != "" {
		return u
	}
	return "default"
}
