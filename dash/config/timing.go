package config

import "time"

// Frame pacing and UI timing.
const (
	// Target frame period; ~50 fps.
	FramePeriod = 20 * time.Millisecond
	TargetFPS   = int(time.Second / FramePeriod)

	// Minimum interval between accepted button edges.
	Debounce = 50 * time.Millisecond

	// How long a popup stays on screen.
	PopupTTL = 3 * time.Second

	// How long a new min/max keeps the cell value highlighted.
	PeakHold = 500 * time.Millisecond
)

// BlinkHalfPeriod is the number of frames a critical cell spends in each
// blink phase: (frame / BlinkHalfPeriod) % 2 == 0 means visible. Six frames
// at 50 fps gives roughly 4 Hz.
const BlinkHalfPeriod = 6

// FPSAvgWindow is the number of frames in the windowed average shown by the
// Average and Combined fps modes.
const FPSAvgWindow = 120
