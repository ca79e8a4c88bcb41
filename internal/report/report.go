// Package report renders faceoff analytics as terminal tables for the
// rinkreport CLI.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/internal/domain/types"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintGamesTable prints the upstream game schedule.
func PrintGamesTable(w io.Writer, games []model.Game) {
	table := newTable(w)
	table.Header("ID", "HOME", "AWAY", "DATE")
	for _, g := range games {
		table.Append(g.ID, g.HomeTeam, g.AwayTeam, g.Date)
	}
	table.Render()
}

// PrintSummary prints the two-team stat card as a one-line header.
func PrintSummary(w io.Writer, s types.Summary) {
	fmt.Fprintf(w, "\n%s %d - %d %s  |  Faceoffs: %d  |  %s %.1f%% / %s %.1f%%\n\n",
		s.Team1, s.Team1Wins, s.Team2Wins, s.Team2,
		s.Total, s.Team1, s.Team1WinRate, s.Team2, s.Team2WinRate)
}

// PrintPlayerTable prints the per-player faceoff table, most active
// players first.
func PrintPlayerTable(w io.Writer, rows []types.PlayerStats) {
	table := newTable(w)
	table.Header("PLAYER", "TEAM", "W", "L", "TOTAL", "WIN%", "DEF", "NEU", "OFF")
	for i := range rows {
		r := &rows[i]
		table.Append(
			r.Player,
			r.Team,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Total),
			fmt.Sprintf("%d%%", r.WinRate),
			strconv.Itoa(r.ZoneCounts[types.ZoneDefensive]),
			strconv.Itoa(r.ZoneCounts[types.ZoneNeutral]),
			strconv.Itoa(r.ZoneCounts[types.ZoneOffensive]),
		)
	}
	table.Render()
}

// PrintMatchupTable prints head-to-head rows.
func PrintMatchupTable(w io.Writer, rows []types.Matchup) {
	table := newTable(w)
	table.Header("PLAYER", "TEAM", "OPPONENT", "W", "L", "TOTAL", "WIN%")
	for _, r := range rows {
		table.Append(
			r.Player,
			r.Team,
			r.Opponent,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Total),
			fmt.Sprintf("%.1f%%", r.WinRate),
		)
	}
	table.Render()
}

// PrintZoneTable prints per-zone win shares. Zones with no data render
// a dash instead of a share.
func PrintZoneTable(w io.Writer, split []types.ZoneShare, teams []string) {
	table := newTable(w)
	header := []any{"ZONE", "TOTAL"}
	for _, t := range teams {
		header = append(header, t)
	}
	table.Header(header...)
	for _, z := range split {
		row := []any{string(z.Zone), strconv.Itoa(z.Total)}
		for _, t := range teams {
			cell := "-"
			if z.HasData {
				cell = fmt.Sprintf("%d (%.0f%%)", z.Wins[t], z.Share[t])
			}
			row = append(row, cell)
		}
		table.Append(row...)
	}
	table.Render()
}
