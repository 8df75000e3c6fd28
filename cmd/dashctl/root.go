package main

import (
	"context"
	_ "time/tzdata"

	"alert-dashboard-service/internal/alerts/adapters/file"
	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/usecase"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	file     string
	locale   string
	timezone string
	noColor  bool
}

func (o *globalOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.file, "file", "f", "data/dashboard.json", "JSON file with the alert records")
	fs.StringVar(&o.locale, "locale", "en-US", "locale of the day labels (BCP 47)")
	fs.StringVar(&o.timezone, "timezone", "UTC", "IANA time zone of the day labels")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
}

// aggregate loads the records file and groups it by groupBy.
func (o *globalOptions) aggregate(ctx context.Context, groupBy string) (*domain.AggregationResult, error) {
	dates, err := domain.NewDateFormatter(o.locale, o.timezone)
	if err != nil {
		return nil, err
	}
	uc := usecase.NewAggregateAlertsUseCase(file.NewSource(o.file), dates, nil)
	return uc.Execute(ctx, usecase.AggregateAlertsInput{GroupBy: groupBy})
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Aggregate alert records and build dashboard charts offline",
		Long: `dashctl groups a static file of alert records by category, severity or
calendar day and prints either the counts or the chart configurations the
dashboard would render for them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	opts.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(newAggregateCmd(opts))
	cmd.AddCommand(newChartsCmd(opts))
	return cmd
}
