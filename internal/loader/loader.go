// Package loader reads hourly usage readings from spreadsheet exports.
//
// The supported exports carry a Time column ("Sep 18, 2013 1:00:00 PM"), a
// numeric Usage column (kilowatts), and optionally an Id column holding the
// textual label of a 1-based row index. Rows that fail to parse are reported
// as RowErrors rather than dropped silently, so callers can decide whether to
// warn and continue.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"peakplot/pkg/models"
)

// RowError describes a single input row that could not be parsed.
type RowError struct {
	Row    int // 1-based row number in the source file
	Column string
	Err    error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: column %q: %v", e.Row, e.Column, e.Err)
}

// Result holds the readings loaded from one file plus any rows that failed.
type Result struct {
	Readings []models.Reading
	Errors   []RowError
}

// columns maps the header names we care about to their positions.
type columns struct {
	time  int
	usage int
	id    int // -1 when the export has no Id column
}

func findColumns(header []string) (columns, error) {
	cols := columns{time: -1, usage: -1, id: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "time":
			cols.time = i
		case "usage":
			cols.usage = i
		case "id":
			cols.id = i
		}
	}
	if cols.time < 0 || cols.usage < 0 {
		return cols, fmt.Errorf("header must contain Time and Usage columns, got %v", header)
	}
	return cols, nil
}

// parseRow converts one raw row into a Reading. rowNum is 1-based and only
// used for error reporting. When the export has no Id column the fallback
// index (input row order) is used instead.
func parseRow(raw []string, cols columns, rowNum, fallbackIndex int, source string) (models.Reading, *RowError) {
	get := func(i int) string {
		if i < 0 || i >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[i])
	}

	timeText := get(cols.time)
	ts, err := models.ParseTimestamp(timeText)
	if err != nil {
		return models.Reading{}, &RowError{Row: rowNum, Column: "Time", Err: err}
	}

	usage, err := strconv.ParseFloat(get(cols.usage), 64)
	if err != nil {
		return models.Reading{}, &RowError{Row: rowNum, Column: "Usage", Err: err}
	}

	index := fallbackIndex
	if cols.id >= 0 {
		// The Id column is categorical in the source export. Going through the
		// text label, not any underlying category code, yields the real value.
		index, err = strconv.Atoi(get(cols.id))
		if err != nil {
			return models.Reading{}, &RowError{Row: rowNum, Column: "Id", Err: err}
		}
	}

	return models.Reading{
		Index:     index,
		Timestamp: ts,
		UsageKW:   usage,
		HourLabel: timeText,
		Source:    source,
	}, nil
}

// LoadXLSX reads readings from the first sheet of an XLSX export, or from the
// named sheet when sheet is non-empty.
func LoadXLSX(path, sheet, source string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return loadRows(rows, source)
}

// LoadCSV reads readings from a CSV export with the same column layout.
func LoadCSV(path, source string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	return loadRows(rows, source)
}

// Load picks the reader based on the file extension (.xlsx or .csv).
func Load(path, sheet, source string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path, sheet, source)
	case ".csv":
		return LoadCSV(path, source)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .xlsx or .csv)", path)
	}
}

func loadRows(rows [][]string, source string) (*Result, error) {
	cols, err := findColumns(rows[0])
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for i, raw := range rows[1:] {
		rowNum := i + 2 // 1-based, counting the header
		reading, rowErr := parseRow(raw, cols, rowNum, len(res.Readings)+1, source)
		if rowErr != nil {
			res.Errors = append(res.Errors, *rowErr)
			continue
		}
		res.Readings = append(res.Readings, reading)
	}

	Normalize(res.Readings)
	return res, nil
}

// Normalize stable-sorts readings ascending by index, then timestamp. Source
// files are not guaranteed to be in order.
func Normalize(readings []models.Reading) {
	sort.SliceStable(readings, func(i, j int) bool {
		if readings[i].Index != readings[j].Index {
			return readings[i].Index < readings[j].Index
		}
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})
}
