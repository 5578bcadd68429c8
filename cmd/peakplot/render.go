package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"peakplot/internal/chart"
	"peakplot/internal/loader"
	"peakplot/pkg/models"
)

var (
	renderInput  string
	renderSheet  string
	renderSource string
	renderOutput string
	renderAxis   string
	renderWidth  int
	renderHeight int
	renderTitle  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the shaded usage chart",
	Long: `Renders hourly usage as an area chart: translucent night shading over the
early-morning and late-evening hours of every day, sky-blue off-peak and
spring-green peak demand bands filled under the curve, and the raw usage line
drawn on top. Input comes from an export file (--input) or from readings
previously imported into the database (--source). The output format follows
the file extension (.png or .svg).`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "Export file to chart (.xlsx or .csv)")
	renderCmd.Flags().StringVar(&renderSheet, "sheet", "", "Sheet name for XLSX input (default: first sheet)")
	renderCmd.Flags().StringVar(&renderSource, "source", "", "Chart readings stored under this source label")
	renderCmd.Flags().StringVar(&renderOutput, "output", "usage.png", "Output image path (.png or .svg)")
	renderCmd.Flags().StringVar(&renderAxis, "axis", "", "X-axis mode: time or index (default from config: time)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Chart width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Chart height in pixels")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "Chart title")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if (renderInput == "") == (renderSource == "") {
		return fmt.Errorf("exactly one of --input or --source is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	readings, err := collectReadings()
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		return fmt.Errorf("no readings to chart")
	}

	axisMode := cfg.Chart.GetAxisMode()
	if renderAxis != "" {
		axisMode = renderAxis
	}
	mode, err := chart.ParseAxisMode(axisMode)
	if err != nil {
		return err
	}

	format, err := formatFromPath(renderOutput)
	if err != nil {
		return err
	}

	width := cfg.Chart.GetWidth()
	if renderWidth > 0 {
		width = renderWidth
	}
	height := cfg.Chart.GetHeight()
	if renderHeight > 0 {
		height = renderHeight
	}
	title := cfg.Chart.Title
	if renderTitle != "" {
		title = renderTitle
	}

	plot, err := chart.Build(readings, chart.Options{
		Mode:   mode,
		Width:  width,
		Height: height,
		YMaxKW: cfg.Chart.GetYMaxKW(),
		Title:  title,
	})
	if err != nil {
		return fmt.Errorf("building chart: %w", err)
	}

	out, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := plot.Render(format, out); err != nil {
		return err
	}

	fmt.Printf("Rendered %d readings over %d days to %s\n", len(readings), plot.Days(), renderOutput)
	return nil
}

// collectReadings loads readings from the input file or the database,
// depending on which flag was given.
func collectReadings() ([]models.Reading, error) {
	if renderInput != "" {
		res, err := loader.Load(renderInput, renderSheet, renderSource)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", renderInput, err)
		}
		for _, rowErr := range res.Errors {
			fmt.Printf("warning: skipping %v\n", rowErr)
		}
		return res.Readings, nil
	}

	db, err := openDB()
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	readings, err := db.ListReadings(renderSource)
	if err != nil {
		return nil, fmt.Errorf("listing readings for %s: %w", renderSource, err)
	}
	return readings, nil
}

func formatFromPath(path string) (chart.Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return chart.FormatPNG, nil
	}
	return chart.ParseFormat(ext)
}
