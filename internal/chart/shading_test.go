package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightShadingOffsets(t *testing.T) {
	var acc LayerList
	addNightShading(&acc, 2, indexCoords{}, AxisIndex, 10)

	layers := acc.Layers()
	require.Len(t, layers, 6)

	// Day 1: morning [0,5), evening [19,24), then the label.
	assert.Equal(t, 0.0, layers[0].X0)
	assert.Equal(t, 5.0, layers[0].X1)
	assert.Equal(t, 19.0, layers[1].X0)
	assert.Equal(t, 24.0, layers[1].X1)
	assert.Equal(t, KindLabel, layers[2].Kind)

	// Day 2 shifts by 24 hours.
	assert.Equal(t, 24.0, layers[3].X0)
	assert.Equal(t, 29.0, layers[3].X1)
	assert.Equal(t, 43.0, layers[4].X0)
	assert.Equal(t, 48.0, layers[4].X1)
}

func TestNightLabelAfterRectangles(t *testing.T) {
	var acc LayerList
	addNightShading(&acc, 3, indexCoords{}, AxisIndex, 10)

	for i, l := range acc.Layers() {
		if l.Kind != KindLabel {
			continue
		}
		assert.Equal(t, KindRect, acc.Layers()[i-1].Kind)
		assert.Equal(t, KindRect, acc.Layers()[i-2].Kind)
		assert.Equal(t, "night", l.Text)
	}
}

func TestNightLabelPosition(t *testing.T) {
	var idxAcc, timeAcc LayerList
	addNightShading(&idxAcc, 1, indexCoords{}, AxisIndex, 10)
	addNightShading(&timeAcc, 1, timeCoords{start: seriesStart}, AxisTime, 10)

	idxLabel := idxAcc.Layers()[2]
	assert.Equal(t, 0.0, idxLabel.TextX, "index mode label sits at the morning window edge")
	assert.InDelta(t, 9.3, idxLabel.TextY, 0.001)

	timeLabel := timeAcc.Layers()[2]
	c := timeCoords{start: seriesStart}
	assert.Equal(t, c.hourX(3), timeLabel.TextX, "time mode label sits three hours in")
}

func TestShadingIgnoresWeekday(t *testing.T) {
	// Shading windows are identical for weekends and weekdays.
	var acc LayerList
	addNightShading(&acc, 7, indexCoords{}, AxisIndex, 10)

	var rects int
	for _, l := range acc.Layers() {
		if l.Kind == KindRect {
			rects++
			assert.Equal(t, nightColor, l.Color)
		}
	}
	assert.Equal(t, 14, rects)
}
