package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"peakplot/pkg/models"
)

var listSource string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored readings",
	Long:  `Displays stored hourly usage readings from the database.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listSource, "source", "", "Filter by source label")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Determine which sources to query
	sources := []string{}
	if listSource != "" {
		sources = append(sources, listSource)
	} else {
		sources, err = db.Sources()
		if err != nil {
			return fmt.Errorf("listing sources: %w", err)
		}
		if len(sources) == 0 {
			fmt.Println("No readings stored")
			return nil
		}
	}

	// Query and display data for each source
	for _, source := range sources {
		var data []models.Reading
		data, err = db.ListReadings(source)
		if err != nil {
			return fmt.Errorf("listing readings for %s: %w", source, err)
		}

		if len(data) == 0 {
			fmt.Printf("No readings found for %s\n", source)
			continue
		}

		fmt.Printf("\n%s Readings:\n", source)
		fmt.Println("--------------------------------------------------")
		fmt.Printf("%-6s  %-22s  %10s\n", "Index", "Time", "kW")
		fmt.Println("--------------------------------------------------")

		var total float64
		for _, r := range data {
			fmt.Printf("%-6d  %-22s  %10.2f\n", r.Index, r.Timestamp.Format("2006-01-02 15:04"), r.UsageKW)
			total += r.UsageKW
		}

		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total: %.2f kWh (%d readings)\n", total, len(data))
	}

	return nil
}
