package chart

import (
	"fmt"
	"time"

	"peakplot/pkg/models"
)

// Options control how a plot is assembled.
type Options struct {
	Mode   AxisMode
	Width  int
	Height int
	YMaxKW float64
	Title  string
}

// Plot is a fully assembled chart, ready to render or inspect.
type Plot struct {
	layers   LayerList
	readings []models.Reading

	mode     AxisMode
	firstDay time.Time
	days     int
	yMax     float64
	width    int
	height   int
	title    string
	c        coords
}

// Layers exposes the accumulated draw layers in paint order.
func (p *Plot) Layers() []Layer {
	return p.layers.Layers()
}

// Days returns the number of days the plot covers.
func (p *Plot) Days() int {
	return p.days
}

// FirstDay returns the midnight of the plot's first day.
func (p *Plot) FirstDay() time.Time {
	return p.firstDay
}

// Build assembles the layer stack for a sorted reading series: night shading
// first, then the peak bands day by day, then the usage line on top of
// everything. Readings are expected sorted ascending (loader.Normalize); the
// series is not validated for completeness, so missing hours shift bands
// rather than raising an error.
func Build(readings []models.Reading, opts Options) (*Plot, error) {
	if len(readings) == 0 {
		return nil, fmt.Errorf("no readings to plot")
	}
	if opts.Mode == "" {
		opts.Mode = AxisTime
	}
	if opts.YMaxKW <= 0 {
		opts.YMaxKW = 10
	}

	first := readings[0]
	p := &Plot{
		readings: readings,
		mode:     opts.Mode,
		firstDay: first.Day(),
		yMax:     opts.YMaxKW,
		width:    opts.Width,
		height:   opts.Height,
		title:    opts.Title,
	}

	switch opts.Mode {
	case AxisIndex:
		// Row-count partitioning: exactly 24 readings per day assumed.
		p.days = (len(readings) + 23) / 24
		p.c = indexCoords{}
	case AxisTime:
		last := readings[len(readings)-1]
		p.days = int(last.Timestamp.Sub(p.firstDay).Hours()/24) + 1
		p.c = timeCoords{start: p.firstDay}
	default:
		return nil, fmt.Errorf("unknown axis mode %q", opts.Mode)
	}

	addNightShading(&p.layers, p.days, p.c, p.mode, p.yMax)
	addPeakBands(&p.layers, readings, p.days, p.firstDay, p.c, p.mode)

	xs := make([]float64, len(readings))
	ys := make([]float64, len(readings))
	for i, r := range readings {
		xs[i] = p.c.readingX(r)
		ys[i] = r.UsageKW
	}
	p.layers.Append(Layer{
		Kind:  KindLine,
		Name:  "usage",
		Xs:    xs,
		Ys:    ys,
		Color: lineColor,
	})

	return p, nil
}
