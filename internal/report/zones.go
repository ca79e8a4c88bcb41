package report

import (
	"fmt"
	"os"

	"github.com/okian/rinkside/internal/domain/aggregate"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones <game-id>",
	Short: "Faceoff and shot splits by rink zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, teams, err := loadGame(cmd.Context(), newClient(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Faceoff wins by zone:")
		PrintZoneTable(os.Stdout, aggregate.ZoneSplit(events, teams), teams)
		fmt.Fprintln(os.Stdout, "\nShot attempts by zone:")
		PrintZoneTable(os.Stdout, aggregate.ShotZoneSplit(events, teams), teams)
		return nil
	},
}
