package profile

import (
	"time"

	"obdash/dash/config"
)

// FPS tracks the instantaneous frame rate and a windowed average. The
// average window is reset on page switches so it measures the current page.
type FPS struct {
	instant float32
	peak    float32

	ring  [config.FPSAvgWindow]float32
	idx   int
	count int
	sum   float32
}

// Tick records one finished frame of the given wall-clock duration.
func (f *FPS) Tick(frame time.Duration) {
	if frame <= 0 {
		return
	}
	f.instant = float32(time.Second) / float32(frame)
	if f.instant > f.peak {
		f.peak = f.instant
	}
	if f.count < len(f.ring) {
		f.ring[f.idx] = f.instant
		f.sum += f.instant
		f.count++
	} else {
		f.sum += f.instant - f.ring[f.idx]
		f.ring[f.idx] = f.instant
	}
	f.idx = (f.idx + 1) % len(f.ring)
}

// Instant returns the last frame's rate.
func (f *FPS) Instant() float32 { return f.instant }

// Average returns the windowed mean rate, 0 before the first tick.
func (f *FPS) Average() float32 {
	if f.count == 0 {
		return 0
	}
	return f.sum / float32(f.count)
}

// Peak returns the highest instantaneous rate seen since the last reset.
func (f *FPS) Peak() float32 { return f.peak }

// RoundedInstant returns the instant rate as the integer the header shows.
func (f *FPS) RoundedInstant() int { return int(f.instant + 0.5) }

// RoundedAverage returns the windowed mean as a display integer.
func (f *FPS) RoundedAverage() int { return int(f.Average() + 0.5) }

// Reset clears the window and the peak.
func (f *FPS) Reset() {
	f.idx, f.count, f.sum, f.peak = 0, 0, 0, 0
}
