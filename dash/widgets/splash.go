package widgets

import "obdash/dash/config"

// DrawSplash paints the boot screen shown while the first sensor data
// arrives.
func DrawSplash(d Display, version string) {
	writeCentered(d, fontValue, config.CenterX, config.CenterY-24, "OBD DASHBOARD", White)
	writeCentered(d, fontSmall, config.CenterX, config.CenterY+4, version, Gray)
	writeCentered(d, fontSmall, config.CenterX, config.CenterY+28, "INITIALIZING...", Yellow)
}
