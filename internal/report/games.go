package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games available upstream",
	RunE: func(cmd *cobra.Command, args []string) error {
		games, err := newClient().Games(cmd.Context())
		if err != nil {
			return fmt.Errorf("load games: %w", err)
		}
		PrintGamesTable(os.Stdout, games)
		return nil
	},
}
