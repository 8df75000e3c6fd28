package main

import (
	"encoding/json"

	"alert-dashboard-service/internal/dashboard/core/domain"

	"github.com/spf13/cobra"
)

func newChartsCmd(opts *globalOptions) *cobra.Command {
	var (
		groupBy string
		dark    bool
	)

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Print the bar, pie, line and doughnut chart configurations as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.aggregate(cmd.Context(), groupBy)
			if err != nil {
				return err
			}

			board := domain.NewBoard(domain.State{GroupBy: res.Key(), DarkTheme: dark})
			defer board.Close()

			snap := board.Render(res, dark)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snap.Charts)
		},
	}
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "category", "group key: category, severity or timeSeries")
	cmd.Flags().BoolVar(&dark, "dark", false, "use the dark palette")
	return cmd
}
