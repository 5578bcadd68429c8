package chart

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"peakplot/pkg/models"
)

// Peak demand window offsets, in hours from the start of a weekday.
const (
	PeakStartHour = 14
	PeakEndHour   = 19
)

// hourOffsetFunc maps a reading to its hour offset from the series start.
type hourOffsetFunc func(r models.Reading) float64

func hourOffsets(mode AxisMode, firstDay time.Time) hourOffsetFunc {
	if mode == AxisIndex {
		return func(r models.Reading) float64 { return float64(r.Index - 1) }
	}
	return func(r models.Reading) float64 { return r.Timestamp.Sub(firstDay).Hours() }
}

// addPeakBands appends one filled region per weekend day and three per
// weekday, in chronological order. Each region's top edge follows the usage
// values and its bottom edge sits at zero. Weekday regions meet at the peak
// window boundaries and deliberately share their boundary reading, so adjacent
// bands overlap by one sample.
func addPeakBands(acc *LayerList, readings []models.Reading, days int, firstDay time.Time, c coords, mode AxisMode) {
	hourOf := hourOffsets(mode, firstDay)
	for d := 0; d < days; d++ {
		dayStart := firstDay.AddDate(0, 0, d)
		if wd := dayStart.Weekday(); wd == time.Saturday || wd == time.Sunday {
			addBand(acc, readings, d, 0, 24, offPeakColor, fmt.Sprintf("day %d weekend", d+1), c, hourOf)
			continue
		}
		addBand(acc, readings, d, 0, PeakStartHour, offPeakColor, fmt.Sprintf("day %d off-peak am", d+1), c, hourOf)
		addBand(acc, readings, d, PeakStartHour, PeakEndHour, peakColor, fmt.Sprintf("day %d peak", d+1), c, hourOf)
		addBand(acc, readings, d, PeakEndHour, 24, offPeakColor, fmt.Sprintf("day %d off-peak pm", d+1), c, hourOf)
	}
}

// addBand selects the readings of day d whose within-day hour offset falls in
// [lo, hi] and appends them as one filled band. The hi bound is exclusive at
// 24 so the next day's first reading stays out.
func addBand(acc *LayerList, readings []models.Reading, d int, lo, hi float64, color drawing.Color, name string, c coords, hourOf hourOffsetFunc) {
	var xs, ys []float64
	for _, r := range readings {
		hd := hourOf(r) - float64(d*24)
		if hd < lo || hd > hi || hd >= 24 {
			continue
		}
		xs = append(xs, c.readingX(r))
		ys = append(ys, r.UsageKW)
	}
	if len(xs) == 0 {
		return
	}
	acc.Append(Layer{
		Kind:  KindBand,
		Name:  name,
		Xs:    xs,
		Ys:    ys,
		Color: color,
	})
}
