package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Monte Carlo projection of future investment portfolio values",
	Long: `Forecast projects the distribution of future portfolio values by
repeatedly sampling annual returns from a Gaussian model.

It provides tools for:
  - Running simulation batches against configurable return profiles
  - Inflation-adjusted compounding over any number of periods
  - Median and percentile summaries of the ending-value distribution
  - Streaming per-run trajectories to CSV for audit
  - Recording batch summaries to SQLite for later comparison

Complete documentation is available at https://github.com/rustyeddy/forecast`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
