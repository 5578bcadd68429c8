package chart

import (
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"peakplot/pkg/models"
)

// AxisMode selects how the x axis is laid out.
type AxisMode string

const (
	// AxisTime plots readings at their real timestamps, with one tick per
	// calendar day. Days are derived from the timestamp span.
	AxisTime AxisMode = "time"
	// AxisIndex plots readings at their 1-based sequence index and assumes 24
	// rows per day. Ticks sit on the first reading of each day.
	AxisIndex AxisMode = "index"
)

// ParseAxisMode validates an axis mode string.
func ParseAxisMode(s string) (AxisMode, error) {
	switch AxisMode(s) {
	case AxisTime, AxisIndex:
		return AxisMode(s), nil
	default:
		return "", fmt.Errorf("unknown axis mode %q (available: time, index)", s)
	}
}

// coords maps readings and hour offsets into x-axis units for one axis mode.
type coords interface {
	readingX(r models.Reading) float64
	hourX(h float64) float64
}

type indexCoords struct{}

func (indexCoords) readingX(r models.Reading) float64 { return float64(r.Index) }
func (indexCoords) hourX(h float64) float64           { return h }

type timeCoords struct {
	start time.Time // midnight of the first day
}

func (c timeCoords) readingX(r models.Reading) float64 {
	return float64(chart.TimeToFloat64(r.Timestamp))
}

func (c timeCoords) hourX(h float64) float64 {
	return float64(chart.TimeToFloat64(c.start.Add(time.Duration(h * float64(time.Hour)))))
}

// monthAbbrevs match the source export's day labels ("Sept 19", "June 2").
var monthAbbrevs = [...]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "June",
	time.July:      "July",
	time.August:    "Aug",
	time.September: "Sept",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

func monthDay(t time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbrevs[t.Month()], t.Day())
}

// yAxis returns the fixed usage axis: domain [0, maxKW] with a zero-padded
// kilowatt label on every integer tick.
func yAxis(maxKW float64) chart.YAxis {
	ticks := make([]chart.Tick, 0, int(maxKW)+1)
	for v := 0; v <= int(maxKW); v++ {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprintf("%02d kW", v)})
	}
	return chart.YAxis{
		Range: &chart.ContinuousRange{Min: 0, Max: maxKW},
		Ticks: ticks,
	}
}

// indexXAxis places one tick on the first reading of each day, labeled with
// that day's calendar date derived from the data.
func indexXAxis(firstDay time.Time, days int) chart.XAxis {
	ticks := make([]chart.Tick, 0, days)
	for d := 1; d <= days; d++ {
		ticks = append(ticks, chart.Tick{
			Value: float64((d-1)*24 + 1),
			Label: monthDay(firstDay.AddDate(0, 0, d-1)),
		})
	}
	return chart.XAxis{
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: 0, Max: float64(days * 24)},
	}
}

// timeXAxis spans the actual timestamp range with a tick at each midnight.
func timeXAxis(firstDay time.Time, days int) chart.XAxis {
	ticks := make([]chart.Tick, 0, days+1)
	for d := 0; d <= days; d++ {
		day := firstDay.AddDate(0, 0, d)
		ticks = append(ticks, chart.Tick{
			Value: float64(chart.TimeToFloat64(day)),
			Label: day.Format("01/02"),
		})
	}
	return chart.XAxis{
		Ticks: ticks,
		Range: &chart.ContinuousRange{
			Min: float64(chart.TimeToFloat64(firstDay)),
			Max: float64(chart.TimeToFloat64(firstDay.AddDate(0, 0, days))),
		},
	}
}
