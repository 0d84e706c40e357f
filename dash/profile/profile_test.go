package profile

import (
	"math"
	"testing"
	"time"

	"obdash/dash/config"
)

func TestElapsedWrapping(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint32
		want       uint32
	}{
		{"simple", 1000, 4000, 3000},
		{"zero", 500, 500, 0},
		{"wraps", math.MaxUint32 - 99, 100, 200},
		{"glitch reads zero", 0, MaxSaneCycles + 1, 0},
		{"just sane", 0, MaxSaneCycles, MaxSaneCycles},
		{"backwards reads zero", 4000, 1000, 0},
	}
	for _, tt := range tests {
		if got := Elapsed(tt.start, tt.end); got != tt.want {
			t.Errorf("%s: Elapsed(%d, %d) got = %d, want %d", tt.name, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		name    string
		cycles  uint32
		freqHz  uint32
		frameUS uint32
		want    uint8
	}{
		{"half budget", 1_500_000, 150_000_000, 20_000, 50},
		{"full budget", 3_000_000, 150_000_000, 20_000, 100},
		{"over budget clamps", 9_000_000, 150_000_000, 20_000, 100},
		{"zero cycles", 0, 150_000_000, 20_000, 0},
		{"zero frame", 1_000_000, 150_000_000, 0, 0},
		{"zero freq", 1_000_000, 0, 20_000, 0},
		{"high clock", 3_000_000, 375_000_000, 20_000, 40},
	}
	for _, tt := range tests {
		if got := Utilization(tt.cycles, tt.freqHz, tt.frameUS); got != tt.want {
			t.Errorf("%s: Utilization() got = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSaneFreq(t *testing.T) {
	tests := []struct {
		hz   uint32
		want uint32
	}{
		{150_000_000, 150_000_000},
		{250_000_000, 250_000_000},
		{375_000_000, 375_000_000},
		{0, DefaultCPUHz},
		{12_000, DefaultCPUHz},
		{600_000_000, DefaultCPUHz},
	}
	for _, tt := range tests {
		if got := SaneFreq(tt.hz); got != tt.want {
			t.Errorf("SaneFreq(%d) got = %d, want %d", tt.hz, got, tt.want)
		}
	}
}

func TestCyclesToMicros(t *testing.T) {
	if got := CyclesToMicros(1_500_000, 150_000_000); got != 10_000 {
		t.Fatalf("CyclesToMicros() got = %d, want 10000", got)
	}
	if got := CyclesToMicros(100, 0); got != 0 {
		t.Fatalf("CyclesToMicros() with zero clock got = %d, want 0", got)
	}
}

func TestFPSInstantAndAverage(t *testing.T) {
	var f FPS
	if f.Average() != 0 {
		t.Fatalf("Average() before ticks got = %v, want 0", f.Average())
	}
	f.Tick(20 * time.Millisecond)
	if got := f.RoundedInstant(); got != 50 {
		t.Fatalf("RoundedInstant() got = %d, want 50", got)
	}
	f.Tick(40 * time.Millisecond)
	if got := f.RoundedInstant(); got != 25 {
		t.Fatalf("RoundedInstant() after slow frame got = %d, want 25", got)
	}
	avg := f.Average()
	if avg < 37 || avg > 38 {
		t.Fatalf("Average() got = %v, want ~37.5", avg)
	}
	if got := f.Peak(); got != 50 {
		t.Fatalf("Peak() got = %v, want 50", got)
	}
}

func TestFPSWindowSlides(t *testing.T) {
	var f FPS
	for i := 0; i < config.FPSAvgWindow; i++ {
		f.Tick(40 * time.Millisecond)
	}
	for i := 0; i < config.FPSAvgWindow; i++ {
		f.Tick(20 * time.Millisecond)
	}
	if got := f.RoundedAverage(); got != 50 {
		t.Fatalf("RoundedAverage() after window refill got = %d, want 50", got)
	}
}

func TestFPSReset(t *testing.T) {
	var f FPS
	f.Tick(10 * time.Millisecond)
	f.Reset()
	if f.Average() != 0 || f.Peak() != 0 {
		t.Fatalf("after Reset: Average() = %v, Peak() = %v, want 0, 0", f.Average(), f.Peak())
	}
}

func TestReadMemReportsStatic(t *testing.T) {
	m := ReadMem()
	want := uint32(2 * config.FrameBytes / 1024)
	if m.StaticKB != want {
		t.Fatalf("StaticKB got = %d, want %d", m.StaticKB, want)
	}
	if m.HeapTotalKB == 0 || m.TotalKB == 0 {
		t.Fatalf("heap/total figures got = %d, %d, want nonzero", m.HeapTotalKB, m.TotalKB)
	}
}
