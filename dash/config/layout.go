// Package config holds the layout, timing and sensor threshold constants
// shared by the renderer, widgets and pipeline. Everything here is fixed at
// build time; integer relationships are checked by constant expressions and
// the float threshold chains are validated in init.
package config

// Display geometry (ST7789 on Pimoroni PIM715, landscape).
const (
	ScreenWidth  = 320
	ScreenHeight = 240

	// Bytes per full RGB565 frame.
	FrameBytes = ScreenWidth * ScreenHeight * 2

	HeaderHeight = 26
	ColWidth     = ScreenWidth / 4
	RowHeight    = (ScreenHeight - HeaderHeight) / 2

	CenterX = ScreenWidth / 2
	CenterY = ScreenHeight / 2

	// Cells inset their background by this much on every side; the exposed
	// border doubles as the divider grid.
	CellInset = 2
)

// Word-fill in the draw target assumes the frame is a whole number of
// 32-bit words and the grid tiles the screen exactly. A violated invariant
// makes these constants negative, which fails to compile.
var _ [0 - FrameBytes%4]struct{}

const (
	_ uint = ScreenWidth - 4*ColWidth                  // columns tile the width
	_ uint = ScreenHeight - HeaderHeight - 2*RowHeight // rows tile the height
	_ uint = RowHeight - 2*CellInset - 1               // cell interior non-empty
)

// Sensor engine sizing.
const (
	// Trend detection window and the sub-window compared at each end.
	HistorySize = 50
	TrendWindow = 10

	// Graph ring: one sample kept every GraphStride frames.
	GraphSize   = 60
	GraphStride = 100

	// Rolling average ring: one sample kept every AvgStride frames.
	AvgSize   = 60
	AvgStride = 250
)

// TrendThreshold is the minimum difference between the recent and older
// history averages before a trend arrow is shown.
const TrendThreshold float32 = 0.5

// Log ring sizing.
const (
	LogCap    = 14
	LogMsgLen = 40
)
