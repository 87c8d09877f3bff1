package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/guard"
)

func newStatsCmd(a *app) *cobra.Command {
	var monthly string
	cmd := &cobra.Command{
		Use:         "stats",
		Annotations: page(guard.HomePath),
		Short:       "Show platform statistics",
		Long: "Without flags prints this month's counts and the top courses.\n" +
			"--monthly prints the monthly series of one metric, or of all with --monthly all.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("monthly") {
				summary, err := a.client.Dashboard().Stats(ctx)
				if err != nil {
					return a.fail(err)
				}
				return a.print(summary)
			}

			m := api.Metric(monthly)
			if monthly == "all" {
				m = ""
			} else if !slices.Contains(api.Metrics, m) {
				return fmt.Errorf("unknown metric %q, want one of %v or all", monthly, api.Metrics)
			}
			series, err := a.client.Dashboard().MonthlyStats(ctx, m)
			if err != nil {
				return a.fail(err)
			}
			return a.print(series)
		},
	}
	cmd.Flags().StringVar(&monthly, "monthly", "all", "metric for the monthly series")
	return cmd
}

func newEndpointsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "Print the API routes in use",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.print(a.client.API().Endpoints())
		},
	}
}
