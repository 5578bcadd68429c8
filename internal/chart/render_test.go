package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "png", want: FormatPNG},
		{input: "PNG", want: FormatPNG},
		{input: "svg", want: FormatSVG},
		{input: "jpeg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRenderPNG(t *testing.T) {
	p, err := Build(makeReadings(8), Options{Mode: AxisIndex, Width: 800, Height: 400})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Render(FormatPNG, &buf))

	assert.Greater(t, buf.Len(), 4)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRenderSVG(t *testing.T) {
	p, err := Build(makeReadings(8), Options{Mode: AxisTime, Width: 800, Height: 400})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Render(FormatSVG, &buf))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "night")
	assert.Contains(t, out, "03 kW")
}

func TestLayerCountTwoDays(t *testing.T) {
	p, err := Build(makeReadings(2), Options{Mode: AxisIndex})
	require.NoError(t, err)

	// 2 days: 4 rectangles, 2 labels, 6 weekday bands, 1 line.
	assert.Len(t, p.Layers(), 13)
}
