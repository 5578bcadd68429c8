package chart

import (
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the render output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format string (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG, FormatSVG:
		return Format(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown output format %q (available: png, svg)", s)
	}
}

// Render draws the plot's layers in paint order and writes the encoded image.
func (p *Plot) Render(format Format, w io.Writer) error {
	series := make([]chart.Series, 0, p.layers.Len())
	for _, l := range p.layers.Layers() {
		switch l.Kind {
		case KindRect:
			// A constant-value series filled to the baseline spans the full
			// plot height, which reads as a background rectangle.
			series = append(series, chart.ContinuousSeries{
				Name:    l.Name,
				XValues: []float64{l.X0, l.X1},
				YValues: []float64{p.yMax, p.yMax},
				Style: chart.Style{
					StrokeWidth: 1,
					StrokeColor: l.Color,
					FillColor:   l.Color,
				},
			})
		case KindLabel:
			series = append(series, chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{XValue: l.TextX, YValue: l.TextY, Label: l.Text},
				},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					FillColor:   drawing.ColorTransparent,
					FontColor:   l.Color,
				},
			})
		case KindBand:
			series = append(series, chart.ContinuousSeries{
				Name:    l.Name,
				XValues: l.Xs,
				YValues: l.Ys,
				Style: chart.Style{
					StrokeWidth: 1,
					StrokeColor: l.Color,
					FillColor:   l.Color,
				},
			})
		case KindLine:
			series = append(series, chart.ContinuousSeries{
				Name:    l.Name,
				XValues: l.Xs,
				YValues: l.Ys,
				Style: chart.Style{
					StrokeWidth: 2,
					StrokeColor: l.Color,
				},
			})
		}
	}

	var xAxis chart.XAxis
	if p.mode == AxisIndex {
		xAxis = indexXAxis(p.firstDay, p.days)
	} else {
		xAxis = timeXAxis(p.firstDay, p.days)
	}

	ch := chart.Chart{
		Title:      p.title,
		Width:      p.width,
		Height:     p.height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 32}},
		XAxis:      xAxis,
		YAxis:      yAxis(p.yMax),
		Series:     series,
	}

	renderer := chart.PNG
	if format == FormatSVG {
		renderer = chart.SVG
	}
	if err := ch.Render(renderer, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
