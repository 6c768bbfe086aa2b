package cmd

import (
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "launchpad",
	Short: "Creative assistant for learning new skills",
	Long:  "Launchpad — terminal creative assistant that maps your interests to courses, critiques your projects and rewards your progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LAUNCHPAD_DB env var)")

	rootCmd.AddCommand(journeyCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the loaded config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
