package widgets

import (
	"fmt"
	"image/color"

	"obdash/dash/anim"
	"obdash/dash/config"
	"obdash/dash/sensor"
)

// CellCommon is what every cell needs beyond its value: the animated
// background, the critical flag driving blink and shake, the frame counter
// for the phases, trend and peak state, and the graph source.
type CellCommon struct {
	Bg       color.RGBA
	Critical bool
	Frame    uint32
	Trend    sensor.Trend
	Peak     bool
	State    *sensor.State
}

// effective returns the background after the blink substitution and the
// horizontal shake for the cell contents.
func (c *CellCommon) effective() (bg color.RGBA, shake int16) {
	bg = c.Bg
	if c.Critical && !anim.BlinkOn(c.Frame) {
		bg = Black
	}
	return bg, int16(anim.ShakeOffset(c.Frame, c.Critical))
}

// cell interior layout, relative to the cell origin.
const (
	cellLabelY  = 16
	cellValueY  = 52
	cellMinMaxY = 72
	cellStatusY = 86
	cellGraphH  = 18
)

// drawCellFrame fills the inset background and the label row, returning the
// contrast colors for the cell's contents.
func drawCellFrame(d Display, x, y int16, label string, c *CellCommon) (fg, valueFg color.RGBA, shake int16) {
	bg, shake := c.effective()
	d.FillRectangle(x+config.CellInset, y+config.CellInset,
		config.ColWidth-2*config.CellInset, config.RowHeight-2*config.CellInset, bg)

	fg = TextColorFor(bg)
	valueFg = fg
	if c.Peak {
		valueFg = PeakColorFor(bg)
	}

	writeCentered(d, fontSmall, x+config.ColWidth/2+shake, y+cellLabelY, label, fg)
	DrawTrendArrow(d, x+config.ColWidth-14+shake, y+cellLabelY-8, c.Trend, fg)
	return fg, valueFg, shake
}

func drawCellGraph(d Display, x, y int16, c *CellCommon, fg color.RGBA) {
	if c.State == nil {
		return
	}
	DrawMiniGraph(d, x+4, y+config.RowHeight-cellGraphH-4, config.ColWidth-8, cellGraphH, c.State, fg)
}

// TempCellData renders oil, DSG, coolant, IAT and EGT cells.
type TempCellData struct {
	CellCommon
	Value    float32
	Min, Max float32
	Avg      float32
	LowBadge bool
}

// DrawTempCell draws a temperature cell: integer value, min/max line,
// average line and the sparkline. LowBadge replaces the status line while
// the fluid is below operating temperature.
func DrawTempCell(d Display, x, y int16, label string, c TempCellData) {
	fg, valueFg, shake := drawCellFrame(d, x, y, label, &c.CellCommon)
	cx := x + config.ColWidth/2 + shake

	outline := TextColorFor(valueFg)
	writeOutlinedCentered(d, fontValue, cx, y+cellValueY, fmt.Sprintf("%.0f", c.Value), valueFg, outline)

	writeCentered(d, fontSmall, cx, y+cellMinMaxY, fmt.Sprintf("%.0f/%.0f", c.Min, c.Max), fg)
	if c.LowBadge {
		writeCentered(d, fontSmall, cx, y+cellStatusY, "LOW", Blue)
	} else {
		writeCentered(d, fontSmall, cx, y+cellStatusY, fmt.Sprintf("AVG %.0f", c.Avg), fg)
	}
	drawCellGraph(d, x, y, &c.CellCommon, fg)
}

// BoostCellData renders the boost cell. Bar values are canonical; the PSI
// view converts at draw time.
type BoostCellData struct {
	CellCommon
	Bar     float32
	MaxBar  float32
	UnitPSI bool
}

// FastAF reports whether the easter egg threshold is crossed in the
// currently displayed unit.
func (c *BoostCellData) FastAF() bool {
	if c.UnitPSI {
		return c.Bar*config.BarToPSI >= config.BoostEasterEggPSI
	}
	return c.Bar >= config.BoostEasterEggBar
}

// DrawBoostCell draws boost pressure with the unit toggle and the easter
// egg flash above the threshold.
func DrawBoostCell(d Display, x, y int16, c BoostCellData) {
	label := "BOOST BAR"
	if c.UnitPSI {
		label = "BOOST PSI"
	}
	fg, valueFg, shake := drawCellFrame(d, x, y, label, &c.CellCommon)
	cx := x + config.ColWidth/2 + shake

	value, maxLine := fmt.Sprintf("%.2f", c.Bar), fmt.Sprintf("MAX %.2f", c.MaxBar)
	if c.UnitPSI {
		value = fmt.Sprintf("%.1f", c.Bar*config.BarToPSI)
		maxLine = fmt.Sprintf("MAX %.1f", c.MaxBar*config.BarToPSI)
	}

	if c.FastAF() {
		// Flash the value with the blink phase while the egg is armed.
		eggFg := Pink
		if !anim.BlinkOn(c.Frame) {
			eggFg = TextColorFor(c.Bg)
		}
		writeOutlinedCentered(d, fontValue, cx, y+cellValueY, value, eggFg, Black)
		writeCentered(d, fontSmall, cx, y+cellStatusY, "FAST AF BOI", Pink)
	} else {
		writeOutlinedCentered(d, fontValue, cx, y+cellValueY, value, valueFg, TextColorFor(valueFg))
	}
	writeCentered(d, fontSmall, cx, y+cellMinMaxY, maxLine, fg)
	drawCellGraph(d, x, y, &c.CellCommon, fg)
}

// AFRCellData renders the air-fuel ratio cell.
type AFRCellData struct {
	CellCommon
	AFR float32
	Avg float32
}

// DrawAFRCell draws the ratio, its lambda equivalent and the mixture
// status.
func DrawAFRCell(d Display, x, y int16, c AFRCellData) {
	fg, valueFg, shake := drawCellFrame(d, x, y, "AFR", &c.CellCommon)
	cx := x + config.ColWidth/2 + shake

	writeOutlinedCentered(d, fontValue, cx, y+cellValueY, fmt.Sprintf("%.1f", c.AFR), valueFg, TextColorFor(valueFg))
	writeCentered(d, fontSmall, cx, y+cellMinMaxY, fmt.Sprintf("L %.2f", c.AFR/config.AFRStoich), fg)
	writeCentered(d, fontSmall, cx, y+cellStatusY, AFRStatus(c.AFR), fg)
	drawCellGraph(d, x, y, &c.CellCommon, fg)
}

// BatteryCellData renders the battery voltage cell.
type BatteryCellData struct {
	CellCommon
	Volts float32
	Min   float32
}

// DrawBatteryCell draws the voltage, the session minimum and the charge
// status.
func DrawBatteryCell(d Display, x, y int16, c BatteryCellData) {
	fg, valueFg, shake := drawCellFrame(d, x, y, "BATT V", &c.CellCommon)
	cx := x + config.ColWidth/2 + shake

	writeOutlinedCentered(d, fontValue, cx, y+cellValueY, fmt.Sprintf("%.1f", c.Volts), valueFg, TextColorFor(valueFg))
	writeCentered(d, fontSmall, cx, y+cellMinMaxY, fmt.Sprintf("MIN %.1f", c.Min), fg)
	writeCentered(d, fontSmall, cx, y+cellStatusY, BatteryStatus(c.Volts), fg)
	drawCellGraph(d, x, y, &c.CellCommon, fg)
}
