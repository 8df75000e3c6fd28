package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAggregateCmd(opts *globalOptions) *cobra.Command {
	var groupBy string

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Print the record count per label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.aggregate(cmd.Context(), groupBy)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			bold := color.New(color.Bold)

			_, _ = fmt.Fprintln(tw, bold.Sprint("LABEL")+"\t"+bold.Sprint("COUNT"))
			for i, label := range res.Labels() {
				_, _ = fmt.Fprintf(tw, "%s\t%d\n", label, res.Counts()[i])
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(w, "\n%d records, %d labels (group by %s)\n", res.Total(), res.Len(), res.Key())
			return nil
		},
	}
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "category", "group key: category, severity or timeSeries")
	return cmd
}
