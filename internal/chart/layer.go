// Package chart builds and renders the shaded peak/off-peak usage chart.
//
// The chart is assembled as an ordered list of draw layers: night shading
// rectangles and their labels first, then per-day peak bands, then the raw
// usage line. Append order is paint order, so later layers draw on top of
// earlier ones. That ordering is a correctness requirement: the "night" label
// must follow its rectangles, and the line must come last of all.
package chart

import "github.com/wcharczuk/go-chart/v2/drawing"

// LayerKind identifies what a layer paints.
type LayerKind int

const (
	// KindRect is a full-height translucent rectangle over an x range.
	KindRect LayerKind = iota
	// KindLabel is a text annotation at a fixed position.
	KindLabel
	// KindBand is a filled region whose top edge follows usage values and
	// whose bottom edge sits at zero.
	KindBand
	// KindLine is a stroked line through data points.
	KindLine
)

// Layer is one paintable element. X coordinates are in the axis units of the
// plot's axis mode (raw indices, or nanosecond floats for time axes).
type Layer struct {
	Kind LayerKind
	Name string

	// Data points for bands and lines.
	Xs []float64
	Ys []float64

	// Horizontal span for rectangles.
	X0, X1 float64

	// Label text and position.
	Text         string
	TextX, TextY float64

	// Fill color for rectangles and bands, stroke color for lines.
	Color drawing.Color
}

// LayerList is the drawing accumulator. Layers paint in append order.
type LayerList struct {
	layers []Layer
}

// Append adds a layer to the end of the paint order.
func (l *LayerList) Append(layer Layer) {
	l.layers = append(l.layers, layer)
}

// Layers returns the accumulated layers in paint order.
func (l *LayerList) Layers() []Layer {
	return l.layers
}

// Len returns the number of accumulated layers.
func (l *LayerList) Len() int {
	return len(l.layers)
}

// Fixed palette. Bands are translucent so the night rectangles remain visible
// underneath them.
var (
	offPeakColor = drawing.Color{R: 135, G: 206, B: 235, A: 115} // skyblue
	peakColor    = drawing.Color{R: 0, G: 255, B: 127, A: 115}   // spring green
	nightColor   = drawing.Color{R: 110, G: 110, B: 110, A: 45}
	labelColor   = drawing.Color{R: 80, G: 80, B: 80, A: 255}
	lineColor    = drawing.Color{R: 54, G: 54, B: 54, A: 255}
)
