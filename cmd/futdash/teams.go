package main

import (
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/futdash/futdash/internal/football"
)

// newTeamsCmd creates the teams listing subcommand.
func newTeamsCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List Brasileirão Série A teams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			list, err := a.football.BrasileiraoTeams(cmd.Context())
			if err != nil {
				return err
			}

			teams := football.FilterTeams(list.Teams, search)
			if len(teams) == 0 {
				cmd.Println("no teams match your search")
				return nil
			}

			cmd.Printf("%s — %d teams\n\n", list.Competition.Name, len(teams))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()
			w.Write([]byte("ID\tTLA\tNAME\tFOUNDED\n"))
			for _, t := range teams {
				founded := "-"
				if t.Founded > 0 {
					founded = strconv.Itoa(t.Founded)
				}
				w.Write([]byte(strconv.Itoa(t.ID) + "\t" + t.TLA + "\t" + t.Name + "\t" + founded + "\n"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, short name or TLA")

	return cmd
}

// newTeamCmd creates the single-team detail subcommand.
func newTeamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "team <id>",
		Short: "Show a team's profile and squad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			details, err := a.football.Team(cmd.Context(), id)
			if err != nil {
				return err
			}

			cmd.Printf("%s (%s)\n", details.Name, details.TLA)
			if details.Area != nil {
				cmd.Printf("country:  %s\n", details.Area.Name)
			}
			if details.Founded > 0 {
				cmd.Printf("founded:  %d\n", details.Founded)
			}
			if details.Venue != "" {
				cmd.Printf("venue:    %s\n", details.Venue)
			}
			if details.ClubColors != "" {
				cmd.Printf("colors:   %s\n", details.ClubColors)
			}
			if details.Website != "" {
				cmd.Printf("website:  %s\n", details.Website)
			}
			if details.Coach != nil && details.Coach.Name != "" {
				cmd.Printf("coach:    %s\n", details.Coach.Name)
			}

			if len(details.Squad) > 0 {
				cmd.Println("\nsquad:")
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				defer w.Flush()
				w.Write([]byte("NAME\tPOSITION\tNATIONALITY\n"))
				for _, p := range details.Squad {
					w.Write([]byte(p.Name + "\t" + p.Position + "\t" + p.Nationality + "\n"))
				}
			}
			return nil
		},
	}
}
