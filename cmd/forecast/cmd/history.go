package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/forecast/journal"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded batch summaries",
	Long: `Show simulation batches previously recorded with 'forecast run --db'.

Example:
  forecast history --db runs.sqlite`,
	RunE: runHistory,
}

var historyDBPath string

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyDBPath, "db", "d", "", "path to SQLite batch journal (required)")
	historyCmd.MarkFlagRequired("db")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := journal.NewSQLite(historyDBPath)
	if err != nil {
		return fmt.Errorf("open batch journal: %w", err)
	}
	defer db.Close()

	batches, err := db.ListBatches()
	if err != nil {
		return fmt.Errorf("list batches: %w", err)
	}

	if len(batches) == 0 {
		fmt.Println("No batches recorded.")
		return nil
	}

	for _, b := range batches {
		printBatch(b)
	}
	return nil
}

func printBatch(b journal.BatchRecord) {
	fmt.Println("==================================================")
	fmt.Printf("Batch ID:      %s\n", b.BatchID)
	fmt.Printf("Created:       %s\n", b.Created.Format(time.RFC3339))
	fmt.Printf("Profile:       %s\n", b.Profile)
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Mean Return:   %.4f%%\n", b.MeanPct)
	fmt.Printf("Std Deviation: %.4f%%\n", b.StdDevPct)
	fmt.Printf("Inflation:     %.4f%%\n", b.InflationPct)
	fmt.Printf("Runs:          %d x %d periods\n", b.Sims, b.Periods)
	fmt.Printf("Start Value:   %.2f\n", b.Start)
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Median:        %.2f\n", b.Median)
	fmt.Printf("10%% Best:      %.2f\n", b.P90)
	fmt.Printf("10%% Worst:     %.2f\n", b.P10)
	fmt.Printf("Runtime:       %dms\n", b.Runtime.Milliseconds())
	fmt.Println()
}
