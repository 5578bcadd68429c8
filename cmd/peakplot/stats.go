package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"peakplot/internal/analysis"
	"peakplot/internal/loader"
	"peakplot/pkg/models"
)

var (
	statsInput  string
	statsSheet  string
	statsSource string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-day usage totals and peak/off-peak split",
	Long: `Summarizes hourly readings into per-day totals, splitting weekday usage into
peak and off-peak demand windows. Weekends are all off-peak.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsInput, "input", "", "Export file to summarize (.xlsx or .csv)")
	statsCmd.Flags().StringVar(&statsSheet, "sheet", "", "Sheet name for XLSX input (default: first sheet)")
	statsCmd.Flags().StringVar(&statsSource, "source", "", "Summarize readings stored under this source label")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if (statsInput == "") == (statsSource == "") {
		return fmt.Errorf("exactly one of --input or --source is required")
	}

	var readings []models.Reading
	if statsInput != "" {
		res, err := loader.Load(statsInput, statsSheet, statsSource)
		if err != nil {
			return fmt.Errorf("loading %s: %w", statsInput, err)
		}
		for _, rowErr := range res.Errors {
			fmt.Printf("warning: skipping %v\n", rowErr)
		}
		readings = res.Readings
	} else {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		readings, err = db.ListReadings(statsSource)
		if err != nil {
			return fmt.Errorf("listing readings for %s: %w", statsSource, err)
		}
	}

	summaries := analysis.Summarize(readings)
	if len(summaries) == 0 {
		fmt.Println("No readings found")
		return nil
	}

	fmt.Println("------------------------------------------------------------------")
	fmt.Printf("%-12s  %-4s  %10s  %10s  %10s  %8s\n", "Date", "Day", "Total kWh", "Peak kWh", "Off-peak", "Samples")
	fmt.Println("------------------------------------------------------------------")

	var total, peak float64
	for _, s := range summaries {
		day := s.Date.Format("Mon")
		fmt.Printf("%-12s  %-4s  %10.2f  %10.2f  %10.2f  %8d\n",
			s.Date.Format("2006-01-02"), day, s.TotalKWh, s.PeakKWh, s.OffPeakKWh, s.Samples)
		total += s.TotalKWh
		peak += s.PeakKWh
	}

	fmt.Println("------------------------------------------------------------------")
	fmt.Printf("Total: %s kWh over %s days (%s kWh during peak windows)\n",
		humanize.CommafWithDigits(total, 2),
		humanize.Comma(int64(len(summaries))),
		humanize.CommafWithDigits(peak, 2))

	return nil
}
