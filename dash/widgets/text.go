package widgets

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	fontSmall  = &proggy.TinySZ8pt7b
	fontHeader = &freemono.Bold9pt7b
	fontValue  = &freemono.Bold12pt7b
)

func textWidth(font tinyfont.Fonter, s string) int16 {
	_, outbox := tinyfont.LineWidth(font, s)
	return int16(outbox)
}

// writeCentered draws s with its horizontal center at cx and baseline y.
func writeCentered(d Display, font tinyfont.Fonter, cx, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, cx-textWidth(font, s)/2, y, s, c)
}

// writeRight draws s with its right edge at rx and baseline y.
func writeRight(d Display, font tinyfont.Fonter, rx, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, rx-textWidth(font, s), y, s, c)
}

// writeOutlined draws s in fg over an outline color. Constrained builds use
// a single offset shadow; the host draws the full 8-direction outline.
func writeOutlined(d Display, font tinyfont.Fonter, x, y int16, s string, fg, outline color.RGBA) {
	if fullOutline {
		for _, off := range [8][2]int16{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 0}, {1, 0},
			{-1, 1}, {0, 1}, {1, 1},
		} {
			tinyfont.WriteLine(d, font, x+off[0], y+off[1], s, outline)
		}
	} else {
		tinyfont.WriteLine(d, font, x+1, y+1, s, outline)
	}
	tinyfont.WriteLine(d, font, x, y, s, fg)
}

// writeOutlinedCentered centers an outlined string at cx.
func writeOutlinedCentered(d Display, font tinyfont.Fonter, cx, y int16, s string, fg, outline color.RGBA) {
	writeOutlined(d, font, cx-textWidth(font, s)/2, y, s, fg, outline)
}
