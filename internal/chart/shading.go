package chart

import "fmt"

// Night window offsets, in hours from the start of each day. The early-morning
// window covers [0,5) and the late-evening window [19,24).
const (
	morningShadeHours = 5
	eveningShadeStart = 19
	eveningShadeHours = 5
)

// addNightShading appends, for every day, two translucent full-height
// rectangles over the early-morning and late-evening windows, followed by one
// "night" label per day. The label is appended strictly after its rectangles
// so it paints on top of them.
func addNightShading(acc *LayerList, days int, c coords, mode AxisMode, yMax float64) {
	for d := 0; d < days; d++ {
		base := float64(d * 24)

		acc.Append(Layer{
			Kind:  KindRect,
			Name:  fmt.Sprintf("day %d morning shade", d+1),
			X0:    c.hourX(base),
			X1:    c.hourX(base + morningShadeHours),
			Color: nightColor,
		})
		acc.Append(Layer{
			Kind:  KindRect,
			Name:  fmt.Sprintf("day %d evening shade", d+1),
			X0:    c.hourX(base + eveningShadeStart),
			X1:    c.hourX(base + eveningShadeStart + eveningShadeHours),
			Color: nightColor,
		})

		// On a time axis the label sits centered in the morning window; on an
		// index axis it hugs the window's left edge.
		labelX := c.hourX(base)
		if mode == AxisTime {
			labelX = c.hourX(base + 3)
		}
		acc.Append(Layer{
			Kind:  KindLabel,
			Name:  fmt.Sprintf("day %d night label", d+1),
			Text:  "night",
			TextX: labelX,
			TextY: yMax - 0.7,
			Color: labelColor,
		})
	}
}
