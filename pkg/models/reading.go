package models

import "time"

// TimestampLayout matches the timestamp text in meter exports,
// e.g. "Sep 18, 2013 1:00:00 PM".
const TimestampLayout = "Jan 2, 2006 3:04:05 PM"

// Reading represents a single hourly electricity usage observation
type Reading struct {
	Index     int       `json:"index"`      // 1-based sequence position from the Id column
	Timestamp time.Time `json:"timestamp"`  // Full timestamp
	UsageKW   float64   `json:"usage_kw"`   // Demand in kilowatts
	HourLabel string    `json:"hour_label"` // Display text carried from the source export
	Source    string    `json:"source"`     // Which export or meter the reading came from
}

// ParseTimestamp parses the timestamp text used in meter exports.
func ParseTimestamp(text string) (time.Time, error) {
	return time.Parse(TimestampLayout, text)
}

// Day returns the midnight of the reading's calendar day.
func (r Reading) Day() time.Time {
	t := r.Timestamp
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
