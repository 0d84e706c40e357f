// Package profile holds the frame timing math: wrapping cycle-counter
// deltas, CPU utilization, fps counters and a memory snapshot for the Debug
// page.
package profile

// MaxSaneCycles is the largest believable single-frame measurement, about
// half a second at the highest supported clock. Larger deltas are counter
// glitches (missed wrap, reconfigured clock) and read as 0.
const MaxSaneCycles = 200_000_000

// Supported CPU clock range; frequencies outside it fall back to the
// default boot clock.
const (
	MinCPUHz     = 100_000_000
	MaxCPUHz     = 500_000_000
	DefaultCPUHz = 150_000_000
)

// Elapsed returns end - start on a free-running 32-bit counter, tolerating
// one wrap. A delta beyond MaxSaneCycles reports 0.
func Elapsed(start, end uint32) uint32 {
	d := end - start
	if d > MaxSaneCycles {
		return 0
	}
	return d
}

// SaneFreq clamps a reported clock to the supported range, substituting the
// default when the report is nonsense.
func SaneFreq(hz uint32) uint32 {
	if hz < MinCPUHz || hz > MaxCPUHz {
		return DefaultCPUHz
	}
	return hz
}

// Utilization returns the percentage of the frame budget spent, 0..100.
// Zero inputs mean the measurement is unusable and read as 0.
func Utilization(cyclesUsed, freqHz, frameUS uint32) uint8 {
	if cyclesUsed == 0 || frameUS == 0 || freqHz == 0 {
		return 0
	}
	expected := uint64(freqHz) * uint64(frameUS) / 1_000_000
	if expected == 0 {
		return 0
	}
	util := uint64(cyclesUsed) * 100 / expected
	if util > 100 {
		util = 100
	}
	return uint8(util)
}

// CyclesToMicros converts a cycle count to microseconds at the given clock.
func CyclesToMicros(cycles, freqHz uint32) uint32 {
	if freqHz == 0 {
		return 0
	}
	return uint32(uint64(cycles) * 1_000_000 / uint64(freqHz))
}
