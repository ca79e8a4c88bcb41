package report

import (
	"fmt"
	"os"
	"time"

	"github.com/okian/rinkside/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	feedURL     string
	feedTimeout time.Duration
	tableLimit  int
	minTotal    int
)

var rootCmd = &cobra.Command{
	Use:   "rinkreport",
	Short: "Faceoff analytics reports from the rinkside feed",
	Long: `rinkreport pulls tracked event data from the upstream stats feed and
prints faceoff analytics as terminal tables: the game schedule,
per-player win rates, head-to-head matchups, and zone win shares.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(); err != nil {
			return err
		}
		return logger.SetLevelString("warn")
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&feedURL, "feed", "https://stats.rinkside.dev/api", "base URL of the upstream stats feed")
	rootCmd.PersistentFlags().DurationVar(&feedTimeout, "timeout", 10*time.Second, "upstream request timeout")
	rootCmd.PersistentFlags().IntVar(&tableLimit, "limit", 25, "maximum rows per table")
	rootCmd.PersistentFlags().IntVar(&minTotal, "min-total", 2, "minimum faceoffs for a matchup row")

	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchupsCmd)
	rootCmd.AddCommand(zonesCmd)
}
