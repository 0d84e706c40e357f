package widgets

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"obdash/dash/config"
	"obdash/dash/logbuf"
)

const logLineHeight = 15

// levelColor maps a log level to its prefix color on the Logs page.
func levelColor(l logbuf.Level) color.RGBA {
	switch l {
	case logbuf.Info:
		return Green
	case logbuf.Warn:
		return Yellow
	case logbuf.Error:
		return Red
	default:
		return Gray
	}
}

// DrawLogsPage renders the ring oldest first, one entry per line, stopping
// before the bottom edge. Timestamps show the last five digits of the
// millisecond clock.
func DrawLogsPage(d Display, entries []logbuf.Entry) {
	y := int16(config.HeaderHeight + 16)
	for _, e := range entries {
		if y > config.ScreenHeight-6 {
			break
		}
		prefix := fmt.Sprintf("[%c]", e.Level.Rune())
		tinyfont.WriteLine(d, fontSmall, 6, y, prefix, levelColor(e.Level))
		tinyfont.WriteLine(d, fontSmall, 32, y, fmt.Sprintf("%05d", e.TimestampMS%100000), Gray)
		tinyfont.WriteLine(d, fontSmall, 74, y, e.Msg, White)
		y += logLineHeight
	}
}
