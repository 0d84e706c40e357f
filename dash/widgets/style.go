// Package widgets draws everything visible: sensor cells, header, divider
// grid, mini-graphs, popups and the Debug and Logs screens. Widgets are
// stateless functions over a draw target; animated surfaces are repainted
// every frame from current values.
package widgets

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Display is the surface widgets draw on. It matches what tinyfont needs
// plus rectangle fills.
type Display interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	Display() error
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetRotation(rotation drivers.Rotation) error
}

var (
	Black  = color.RGBA{A: 0xFF}
	White  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Red    = color.RGBA{R: 0xFF, A: 0xFF}
	Green  = color.RGBA{G: 0xFF, A: 0xFF}
	Blue   = color.RGBA{B: 0xFF, A: 0xFF}
	Yellow = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	Pink   = color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}

	// Slightly darker than yellow; elevated-but-not-critical states.
	Orange = color.RGBA{R: 0xFF, G: 0x81, A: 0xFF}
	// Divider lines, subtle against the black page background.
	Gray = color.RGBA{R: 0x41, G: 0x40, B: 0x41, A: 0xFF}
	// Slightly rich AFR.
	DarkTeal = color.RGBA{G: 0x50, B: 0x52, A: 0xFF}
)

// Luma approximates ITU-R BT.601 luminance from 8-bit channels.
func Luma(c color.RGBA) uint8 {
	return uint8((uint32(c.R)*77 + uint32(c.G)*150 + uint32(c.B)*29) >> 8)
}

// TextColorFor picks the readable foreground for a background: white on
// dark, black on light.
func TextColorFor(bg color.RGBA) color.RGBA {
	if Luma(bg) < 128 {
		return White
	}
	return Black
}

// PeakColorFor picks the peak-highlight color: yellow pops on dark
// backgrounds, black with outline carries on light ones.
func PeakColorFor(bg color.RGBA) color.RGBA {
	if Luma(bg) < 128 {
		return Yellow
	}
	return Black
}
