package report

import (
	"fmt"
	"os"

	"github.com/okian/rinkside/internal/domain/aggregate"
	"github.com/spf13/cobra"
)

var matchupsCmd = &cobra.Command{
	Use:   "matchups <game-id>",
	Short: "Head-to-head faceoff records between centers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, _, err := loadGame(cmd.Context(), newClient(), args[0])
		if err != nil {
			return err
		}
		rows := aggregate.TopMatchups(aggregate.HeadToHead(events), minTotal, tableLimit)
		if len(rows) == 0 {
			fmt.Fprintf(os.Stdout, "no matchups with at least %d faceoffs\n", minTotal)
			return nil
		}
		PrintMatchupTable(os.Stdout, rows)
		return nil
	},
}
