package framebuf

import "image/color"

// Pack565 converts 8-bit channels to an RGB565 pixel.
func Pack565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// Unpack565 expands an RGB565 pixel back to 8-bit channels.
func Unpack565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// From565 returns the opaque color.RGBA for an RGB565 pixel.
func From565(p uint16) color.RGBA {
	r, g, b := Unpack565(p)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// To565 converts a color.RGBA to an RGB565 pixel, dropping alpha.
func To565(c color.RGBA) uint16 { return Pack565(c.R, c.G, c.B) }
