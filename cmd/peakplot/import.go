package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"peakplot/internal/loader"
)

var (
	importInput  string
	importSheet  string
	importSource string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import usage readings from a spreadsheet export",
	Long: `Loads hourly usage readings from an XLSX or CSV export and stores them in
the local SQLite database. Rows that fail to parse are reported and skipped.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importInput, "input", "", "Export file to import (.xlsx or .csv)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Sheet name for XLSX input (default: first sheet)")
	importCmd.Flags().StringVar(&importSource, "source", "", "Source label for the readings (default: input file name)")
	importCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	source := importSource
	if source == "" {
		source = strings.TrimSuffix(filepath.Base(importInput), filepath.Ext(importInput))
	}

	res, err := loader.Load(importInput, importSheet, source)
	if err != nil {
		return fmt.Errorf("loading %s: %w", importInput, err)
	}

	for _, rowErr := range res.Errors {
		fmt.Printf("warning: skipping %v\n", rowErr)
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for i := range res.Readings {
		if err := db.InsertReading(&res.Readings[i]); err != nil {
			return fmt.Errorf("storing reading %d: %w", res.Readings[i].Index, err)
		}
	}

	fmt.Printf("Imported %d readings as %q (%d rows skipped)\n", len(res.Readings), source, len(res.Errors))
	return nil
}
