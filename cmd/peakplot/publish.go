package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"peakplot/internal/analysis"
	"peakplot/internal/publisher"
)

var (
	publishSource string
	publishSince  string
	publishUntil  string
	publishLimit  int
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish daily usage summaries to MQTT / Home Assistant",
	Long: `Reads stored hourly readings from the database, summarizes them per day, and
publishes the daily totals to the configured MQTT broker and/or Home Assistant
HTTP API.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishSource, "source", "", "Source label to publish (default: all sources)")
	publishCmd.Flags().StringVar(&publishSince, "since", "", "Only publish days since this date (YYYY-MM-DD or relative like 7d)")
	publishCmd.Flags().StringVar(&publishUntil, "until", "", "Only publish days until this date (YYYY-MM-DD)")
	publishCmd.Flags().IntVar(&publishLimit, "limit", 0, "Limit number of days to publish (0 = no limit)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.MQTT.Enabled && !cfg.HomeAssistant.Enabled {
		return fmt.Errorf("neither MQTT nor Home Assistant is enabled in config")
	}

	// Create publisher
	pub, err := publisher.New(cfg.MQTT, cfg.HomeAssistant)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Determine which sources to publish
	sources := []string{}
	if publishSource != "" {
		sources = append(sources, publishSource)
	} else {
		sources, err = db.Sources()
		if err != nil {
			return fmt.Errorf("listing sources: %w", err)
		}
	}

	// Parse date filters if provided
	var sinceDate, untilDate *time.Time
	if publishSince != "" {
		since, err := parseDate(publishSince)
		if err != nil {
			return fmt.Errorf("parsing --since date: %w", err)
		}
		sinceDate = &since
	}
	if publishUntil != "" {
		until, err := parseDate(publishUntil)
		if err != nil {
			return fmt.Errorf("parsing --until date: %w", err)
		}
		untilDate = &until
	}

	totalPublished := 0
	for _, source := range sources {
		readings, err := db.ListReadings(source)
		if err != nil {
			return fmt.Errorf("listing readings for %s: %w", source, err)
		}

		summaries := analysis.Summarize(readings)
		if len(summaries) == 0 {
			fmt.Printf("No readings found for %s\n", source)
			continue
		}

		for _, s := range summaries {
			if sinceDate != nil && s.Date.Before(*sinceDate) {
				continue
			}
			if untilDate != nil && s.Date.After(*untilDate) {
				continue
			}
			if publishLimit > 0 && totalPublished >= publishLimit {
				break
			}

			if err := pub.PublishSummary(s); err != nil {
				return fmt.Errorf("publishing %s %s: %w", source, s.Date.Format("2006-01-02"), err)
			}
			fmt.Printf("Published %s %s: %.2f kWh (%.2f peak)\n",
				source, s.Date.Format("2006-01-02"), s.TotalKWh, s.PeakKWh)
			totalPublished++
		}
	}

	fmt.Printf("Published %d daily summaries\n", totalPublished)
	return nil
}

// parseDate accepts YYYY-MM-DD or a relative form like "7d" (7 days ago)
func parseDate(s string) (time.Time, error) {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid relative date %q", s)
		}
		now := time.Now()
		t := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return t.AddDate(0, 0, -days), nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or Nd)", s)
	}
	return t, nil
}
