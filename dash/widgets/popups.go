package widgets

import (
	"image/color"

	"obdash/dash/config"
)

// Popup boxes, centered on screen.
const (
	fpsPopupW = 140
	fpsPopupH = 50

	infoPopupW = 180
	infoPopupH = 60

	dangerPopupW = 210
	dangerPopupH = 70
)

func drawPopupBox(d Display, w, h int16, bg, border color.RGBA) {
	x := int16(config.CenterX) - w/2
	y := int16(config.CenterY) - h/2
	d.FillRectangle(x-3, y-3, w+6, h+6, border)
	d.FillRectangle(x, y, w, h, bg)
}

// DrawResetPopup confirms the statistics reset.
func DrawResetPopup(d Display) {
	drawPopupBox(d, infoPopupW, infoPopupH, Black, White)
	writeCentered(d, fontHeader, config.CenterX, config.CenterY-6, "MIN/AVG/MAX", White)
	writeCentered(d, fontHeader, config.CenterX, config.CenterY+16, "RESET", White)
}

// DrawFPSPopup announces the fps mode just selected.
func DrawFPSPopup(d Display, label string) {
	drawPopupBox(d, fpsPopupW, fpsPopupH, Black, White)
	writeCentered(d, fontHeader, config.CenterX, config.CenterY+5, label, White)
}

// DrawBoostUnitPopup announces the boost unit just selected.
func DrawBoostUnitPopup(d Display, psi bool) {
	unit := "UNIT: BAR"
	if psi {
		unit = "UNIT: PSI"
	}
	drawPopupBox(d, infoPopupW, infoPopupH, Black, White)
	writeCentered(d, fontHeader, config.CenterX, config.CenterY+5, unit, White)
}

// DrawWarningPopup is the EGT danger overlay. The background alternates
// with the blink phase; the text keeps contrast against both phases.
func DrawWarningPopup(d Display, blinkOn bool) {
	bg, fg := Red, White
	if !blinkOn {
		bg, fg = White, Red
	}
	drawPopupBox(d, dangerPopupW, dangerPopupH, bg, Red)
	writeCentered(d, fontHeader, config.CenterX, config.CenterY-8, "WARNING", fg)
	writeCentered(d, fontSmall, config.CenterX, config.CenterY+15, "DANGER TO MANIFOLD", fg)
}
