// Package analysis summarizes hourly readings into per-day totals.
package analysis

import (
	"sort"
	"time"

	"peakplot/internal/chart"
	"peakplot/pkg/models"
)

// DaySummary aggregates one calendar day of hourly readings. Hourly samples in
// kW each contribute one kWh per kW to the totals.
type DaySummary struct {
	Date       time.Time `json:"date"`
	TotalKWh   float64   `json:"total_kwh"`
	PeakKWh    float64   `json:"peak_kwh"`     // Usage inside the weekday peak window
	OffPeakKWh float64   `json:"off_peak_kwh"` // Everything else
	Weekend    bool      `json:"weekend"`
	Samples    int       `json:"samples"`
}

// Summarize groups readings by calendar day, in ascending date order. The
// peak window matches the chart's band boundaries; weekends have no peak
// window at all.
func Summarize(readings []models.Reading) []DaySummary {
	byDay := make(map[time.Time]*DaySummary)
	for _, r := range readings {
		day := r.Day()
		s, ok := byDay[day]
		if !ok {
			wd := day.Weekday()
			s = &DaySummary{
				Date:    day,
				Weekend: wd == time.Saturday || wd == time.Sunday,
			}
			byDay[day] = s
		}

		s.TotalKWh += r.UsageKW
		s.Samples++

		hour := r.Timestamp.Hour()
		if !s.Weekend && hour >= chart.PeakStartHour && hour < chart.PeakEndHour {
			s.PeakKWh += r.UsageKW
		} else {
			s.OffPeakKWh += r.UsageKW
		}
	}

	out := make([]DaySummary, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
