package framebuf

import (
	"image/color"

	"tinygo.org/x/drivers"

	"obdash/dash/config"
)

// Renderer is the draw target over the current render buffer. It satisfies
// the displayer contract tinyfont draws through (Size, SetPixel, Display)
// plus the rectangle fills the widget layer uses. All writes clip to the
// screen; out-of-bounds pixels are dropped.
type Renderer struct {
	db *DoubleBuffer
}

// NewRenderer returns a draw target bound to db's render buffer. The
// binding follows Swap automatically.
func NewRenderer(db *DoubleBuffer) *Renderer { return &Renderer{db: db} }

// Size returns the fixed screen dimensions.
func (r *Renderer) Size() (x, y int16) { return config.ScreenWidth, config.ScreenHeight }

// SetPixel writes one pixel, clipped to bounds.
func (r *Renderer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= config.ScreenWidth || y < 0 || y >= config.ScreenHeight {
		return
	}
	buf := r.db.RenderBuf()
	p := To565(c)
	off := (int(y)*config.ScreenWidth + int(x)) * 2
	buf[off] = byte(p >> 8)
	buf[off+1] = byte(p)
}

// Pixel565 reads back one pixel from the render buffer. Out-of-bounds reads
// return 0.
func (r *Renderer) Pixel565(x, y int) uint16 {
	if x < 0 || x >= config.ScreenWidth || y < 0 || y >= config.ScreenHeight {
		return 0
	}
	buf := r.db.RenderBuf()
	off := (y*config.ScreenWidth + x) * 2
	return uint16(buf[off])<<8 | uint16(buf[off+1])
}

// Display is a no-op; presenting a frame is the pipeline's job.
func (r *Renderer) Display() error { return nil }

// SetRotation is accepted for interface compatibility; the layout is fixed
// landscape.
func (r *Renderer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// FillRectangle fills a clipped rectangle with c.
func (r *Renderer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r.Fill565(int(x), int(y), int(width), int(height), To565(c))
	return nil
}

// Fill565 fills a clipped rectangle with a pre-packed RGB565 pixel. Each row
// is filled by seeding the first pixel and doubling with copy, which keeps
// the inner loop on word-sized moves.
func (r *Renderer) Fill565(x, y, width, height int, p uint16) {
	x0 := clamp(x, 0, config.ScreenWidth)
	y0 := clamp(y, 0, config.ScreenHeight)
	x1 := clamp(x+width, 0, config.ScreenWidth)
	y1 := clamp(y+height, 0, config.ScreenHeight)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	buf := r.db.RenderBuf()
	hi := byte(p >> 8)
	lo := byte(p)

	rowLen := (x1 - x0) * 2
	first := (y0*config.ScreenWidth + x0) * 2
	row := buf[first : first+rowLen]
	row[0] = hi
	row[1] = lo
	for filled := 2; filled < rowLen; filled *= 2 {
		copy(row[filled:], row[:filled])
	}
	for py := y0 + 1; py < y1; py++ {
		off := (py*config.ScreenWidth + x0) * 2
		copy(buf[off:off+rowLen], row)
	}
}

// Clear fills the whole render buffer with c.
func (r *Renderer) Clear(c color.RGBA) {
	buf := r.db.RenderBuf()
	p := To565(c)
	buf[0] = byte(p >> 8)
	buf[1] = byte(p)
	for filled := 2; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
