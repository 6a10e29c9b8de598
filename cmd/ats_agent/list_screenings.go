package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/db"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

func newListScreeningsCmd(a *app) *cobra.Command {
	var filters db.ScreeningFilters

	cmd := &cobra.Command{
		Use:   "list-screenings",
		Short: "List a job's saved screenings, best match first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filters.MinMatch < 0 || filters.MinMatch > 100 {
				return fmt.Errorf("--min-match must be between 0 and 100")
			}

			ctx := cmd.Context()
			database, err := a.connectDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			screenings, err := database.ListScreenings(ctx, filters)
			if err != nil {
				return err
			}
			if screenings == nil {
				screenings = []types.Screening{}
			}

			if a.jsonOut {
				return a.printJSON(cmd, screenings)
			}
			a.printer(cmd).PrintScreeningTable(screenings)
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.JobID, "job", "", "Job ID (required)")
	cmd.Flags().IntVar(&filters.MinMatch, "min-match", 0, "Only screenings matching at least this percentage")
	cmd.Flags().BoolVar(&filters.ShortlistedOnly, "shortlisted", false, "Only shortlisted screenings")
	cmd.Flags().IntVar(&filters.Limit, "limit", db.DefaultListLimit, "Maximum rows to return")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}
