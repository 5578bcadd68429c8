package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bandsOf(t *testing.T, mode AxisMode) []Layer {
	t.Helper()
	p, err := Build(makeReadings(8), Options{Mode: mode})
	require.NoError(t, err)

	var bands []Layer
	for _, l := range p.Layers() {
		if l.Kind == KindBand {
			bands = append(bands, l)
		}
	}
	return bands
}

func TestWeekdayProducesThreeBands(t *testing.T) {
	bands := bandsOf(t, AxisIndex)

	// Sept 18, 2013 is a Wednesday: the first day splits into off-peak, peak,
	// off-peak regions at hour offsets 0, 14, 19, 24.
	day1 := bands[:3]
	assert.Equal(t, offPeakColor, day1[0].Color)
	assert.Equal(t, peakColor, day1[1].Color)
	assert.Equal(t, offPeakColor, day1[2].Color)

	// Region boundaries are inclusive on both ends: adjacent regions share
	// their boundary reading, so indices run [1,15], [15,20], [20,24].
	assert.Equal(t, 1.0, day1[0].Xs[0])
	assert.Equal(t, 15.0, day1[0].Xs[len(day1[0].Xs)-1])
	assert.Equal(t, 15.0, day1[1].Xs[0])
	assert.Equal(t, 20.0, day1[1].Xs[len(day1[1].Xs)-1])
	assert.Equal(t, 20.0, day1[2].Xs[0])
	assert.Equal(t, 24.0, day1[2].Xs[len(day1[2].Xs)-1])

	assert.Len(t, day1[0].Xs, 15)
	assert.Len(t, day1[1].Xs, 6)
	assert.Len(t, day1[2].Xs, 5)
}

func TestWeekendProducesSingleBand(t *testing.T) {
	bands := bandsOf(t, AxisIndex)

	// Days 1-3 are weekdays (3 bands each); days 4 and 5 are Sat/Sun.
	require.GreaterOrEqual(t, len(bands), 11)
	saturday := bands[9]
	sunday := bands[10]

	for _, day := range []Layer{saturday, sunday} {
		assert.Equal(t, offPeakColor, day.Color)
		assert.Len(t, day.Xs, 24, "weekend band spans the full day")
	}
	assert.Equal(t, 73.0, saturday.Xs[0], "Saturday starts at index 73")
	assert.Equal(t, 96.0, saturday.Xs[23])
}

func TestBandCountAcrossWeek(t *testing.T) {
	// 8 days starting Wednesday: 6 weekdays x 3 bands + 2 weekend days x 1.
	bands := bandsOf(t, AxisIndex)
	assert.Len(t, bands, 20)
}

func TestBandsTimeModeBoundaries(t *testing.T) {
	bands := bandsOf(t, AxisTime)
	require.GreaterOrEqual(t, len(bands), 3)

	// Same sample counts as index mode; x values are timestamp-derived.
	assert.Len(t, bands[0].Xs, 15)
	assert.Len(t, bands[1].Xs, 6)
	assert.Len(t, bands[2].Xs, 5)

	c := timeCoords{start: seriesStart}
	assert.Equal(t, c.hourX(14), bands[1].Xs[0])
	assert.Equal(t, c.hourX(19), bands[1].Xs[len(bands[1].Xs)-1])
}

func TestBandsMissingHoursDoNotError(t *testing.T) {
	// A day with missing readings just yields thinner bands, no failure.
	readings := makeReadings(1)
	readings = append(readings[:5], readings[10:]...)

	p, err := Build(readings, Options{Mode: AxisTime})
	require.NoError(t, err)

	var bands []Layer
	for _, l := range p.Layers() {
		if l.Kind == KindBand {
			bands = append(bands, l)
		}
	}
	require.Len(t, bands, 3)
	assert.Len(t, bands[0].Xs, 10, "first region lost the five missing samples")
}

func TestHourOffsets(t *testing.T) {
	readings := makeReadings(2)
	idx := hourOffsets(AxisIndex, seriesStart)
	tm := hourOffsets(AxisTime, seriesStart)

	assert.Equal(t, 0.0, idx(readings[0]))
	assert.Equal(t, 25.0, idx(readings[25]))
	assert.Equal(t, 0.0, tm(readings[0]))
	assert.Equal(t, 25.0, tm(readings[25]))
}

func TestWeekendDetectionUsesCalendar(t *testing.T) {
	// A single Saturday of data must produce one band even in index mode,
	// where days come from row counts but weekday still comes from the date.
	saturday := time.Date(2013, time.September, 21, 0, 0, 0, 0, time.UTC)
	readings := makeReadings(1)
	for i := range readings {
		readings[i].Timestamp = saturday.Add(time.Duration(i) * time.Hour)
	}

	p, err := Build(readings, Options{Mode: AxisIndex})
	require.NoError(t, err)

	var bands int
	for _, l := range p.Layers() {
		if l.Kind == KindBand {
			bands++
		}
	}
	assert.Equal(t, 1, bands)
}
