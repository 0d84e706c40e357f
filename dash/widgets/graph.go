package widgets

import (
	"image/color"

	"obdash/dash/sensor"
)

// graphFlatEpsilon is the sample range below which the graph degenerates to
// a midline.
const graphFlatEpsilon = 0.1

// DrawMiniGraph plots the sensor's graph ring into the given box. The Y
// axis auto-scales to the local min/max; the X axis spreads the actual
// sample count across the width. Every second sample is plotted, which
// halves the per-frame cost without visibly changing the sparkline.
func DrawMiniGraph(d Display, x, y, w, h int16, s *sensor.State, c color.RGBA) {
	n := s.GraphLen()
	if n < 2 || w < 2 || h < 2 {
		return
	}
	min, max := s.GraphBounds()
	span := max - min
	if span < graphFlatEpsilon {
		d.FillRectangle(x, y+h/2, w, 1, c)
		return
	}
	for i := 0; i < n; i += 2 {
		v := s.GraphAt(i)
		px := x + int16(int(w-1)*i/(n-1))
		py := y + h - 1 - int16(float32(h-1)*(v-min)/span)
		d.SetPixel(px, py, c)
		if py < y+h-1 {
			d.SetPixel(px, py+1, c)
		}
	}
}

// DrawTrendArrow draws a 7x7 arrow glyph from three 1-pixel strokes: a stem
// and two diagonals.
func DrawTrendArrow(d Display, x, y int16, t sensor.Trend, c color.RGBA) {
	if t == sensor.TrendFlat {
		return
	}
	var tipY, dir int16
	if t == sensor.TrendRising {
		tipY, dir = y, 1
	} else {
		tipY, dir = y+6, -1
	}
	for i := int16(0); i < 7; i++ {
		d.SetPixel(x+3, y+i, c)
	}
	for i := int16(0); i < 4; i++ {
		d.SetPixel(x+3-i, tipY+dir*i, c)
		d.SetPixel(x+3+i, tipY+dir*i, c)
	}
}
