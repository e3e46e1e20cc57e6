package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/futdash/futdash/internal/football"
)

// newMatchesCmd creates the match-history subcommand.
func newMatchesCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "matches <team-id>",
		Short: "Show a team's match history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			list, err := a.football.TeamMatches(cmd.Context(), id)
			if err != nil {
				return err
			}

			matches := football.SortMatchesByDate(list.Matches)
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}

			if form := football.RecentForm(list.Matches, id, 5); len(form) > 0 {
				cmd.Printf("recent form: %s\n\n", strings.Join(form, " "))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()
			w.Write([]byte("DATE\tHOME\tSCORE\tAWAY\tSTATUS\n"))
			for _, m := range matches {
				w.Write([]byte(strings.Join([]string{
					formatMatchDate(m.UTCDate),
					m.HomeTeam.Name,
					formatScore(m.Score),
					m.AwayTeam.Name,
					m.Status,
				}, "\t") + "\n"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of matches shown")

	return cmd
}

func formatMatchDate(utcDate string) string {
	t, err := time.Parse(time.RFC3339, utcDate)
	if err != nil {
		return utcDate
	}
	return t.Format("2006-01-02")
}

func formatScore(score football.Score) string {
	ft := score.FullTime
	if ft == nil || ft.Home == nil || ft.Away == nil {
		return "- : -"
	}
	return fmt.Sprintf("%d : %d", *ft.Home, *ft.Away)
}
