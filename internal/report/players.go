package report

import (
	"fmt"
	"os"

	"github.com/okian/rinkside/internal/domain/aggregate"
	"github.com/spf13/cobra"
)

var playersCmd = &cobra.Command{
	Use:   "players <game-id>",
	Short: "Per-player faceoff win rates with zone counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, teams, err := loadGame(cmd.Context(), newClient(), args[0])
		if err != nil {
			return err
		}
		if len(teams) >= 2 {
			PrintSummary(os.Stdout, aggregate.TeamSummary(events, teams[0], teams[1]))
		}
		stats := aggregate.PlayerStats(events)
		if len(stats) == 0 {
			fmt.Fprintln(os.Stdout, "no faceoff data for this game")
			return nil
		}
		PrintPlayerTable(os.Stdout, aggregate.TopPlayers(stats, tableLimit))
		return nil
	},
}
