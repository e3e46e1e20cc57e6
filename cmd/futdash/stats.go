package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newStatsCmd creates the historical-statistics subcommand.
func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show historical league statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			ind, err := a.football.Indicators(cmd.Context())
			if err != nil {
				return err
			}

			hist := ind.Historical
			cmd.Println("historical:")
			cmd.Printf("  oldest team:   %s (%d)\n", hist.OldestTeam.Name, hist.OldestTeam.Founded)
			cmd.Printf("  newest team:   %s (%d)\n", hist.NewestTeam.Name, hist.NewestTeam.Founded)
			cmd.Printf("  average year:  %.0f\n", hist.AverageYear)
			cmd.Printf("  founding span: %s\n", hist.FoundingSpan)

			cmd.Printf("\ncentenary teams: %d, modern teams: %d\n", ind.Temporal.CentenaryTeams, ind.Temporal.ModernTeams)

			if len(ind.Temporal.ByDecade) > 0 {
				cmd.Println("\nfounded by decade:")
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, d := range ind.Temporal.ByDecade {
					fmt.Fprintf(w, "  %s\t%d\t%.1f%%\n", d.Decade, d.Count, d.Percentage)
				}
				w.Flush()
			}

			if len(ind.Rankings.Oldest) > 0 {
				cmd.Println("\noldest clubs:")
				for i, t := range ind.Rankings.Oldest {
					cmd.Printf("  %d. %s (%s) — %d\n", i+1, t.Name, t.TLA, t.Founded)
				}
			}
			return nil
		},
	}
}

// newImportCmd creates the data-refresh subcommand.
func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Trigger a backend data refresh from the upstream provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			result, err := a.football.ImportData(cmd.Context())
			if err != nil {
				return err
			}

			if result.Message != "" {
				cmd.Println(result.Message)
			} else {
				cmd.Println("import completed")
			}
			return nil
		},
	}
}
