package widgets

import (
	"image/color"

	"obdash/dash/config"
)

// headerBG is the bar behind the title, just light enough to separate from
// the page background.
var headerBG = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xFF}

// DrawHeader paints the top bar with a centered title and the fps readout
// right-aligned. fps may be empty.
func DrawHeader(d Display, title, fps string) {
	d.FillRectangle(0, 0, config.ScreenWidth, config.HeaderHeight, headerBG)
	writeCentered(d, fontHeader, config.CenterX, 18, title, White)
	if fps != "" {
		writeRight(d, fontSmall, config.ScreenWidth-5, 17, fps, Yellow)
	}
}

// DrawDividers paints the grid between cells: three verticals on the column
// boundaries and one horizontal on the row split.
func DrawDividers(d Display) {
	for i := int16(1); i < 4; i++ {
		d.FillRectangle(i*config.ColWidth, config.HeaderHeight, 1, config.ScreenHeight-config.HeaderHeight, Gray)
	}
	d.FillRectangle(0, config.HeaderHeight+config.RowHeight, config.ScreenWidth, 1, Gray)
}
