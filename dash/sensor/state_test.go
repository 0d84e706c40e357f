package sensor

import (
	"testing"
	"time"

	"obdash/dash/config"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// feed pushes n samples produced by f, advancing the frame counter by one
// per sample so every sample lands in the trend history.
func feed(s *State, n int, f func(i int) float32) {
	for i := 0; i < n; i++ {
		s.Update(f(i), false, t0, uint32(i))
	}
}

func TestHistoryAndGraphBounded(t *testing.T) {
	var s State
	for i := 0; i < 50*config.GraphStride; i++ {
		s.Update(float32(i), false, t0, uint32(i))
		if s.HistoryLen() > config.HistorySize {
			t.Fatalf("HistoryLen() got = %d, want <= %d", s.HistoryLen(), config.HistorySize)
		}
		if s.GraphLen() > config.GraphSize {
			t.Fatalf("GraphLen() got = %d, want <= %d", s.GraphLen(), config.GraphSize)
		}
	}
}

func TestTrendDirections(t *testing.T) {
	tests := []struct {
		name string
		f    func(i int) float32
		want Trend
	}{
		{"rising", func(i int) float32 { return 80 + float32(i)*0.4 }, TrendRising},
		{"falling", func(i int) float32 { return 100 - float32(i)*0.4 }, TrendFalling},
		{"flat", func(i int) float32 { return 90 }, TrendFlat},
		{"noise within epsilon", func(i int) float32 { return 90 + float32(i%2)*0.2 }, TrendFlat},
	}
	for _, tt := range tests {
		var s State
		feed(&s, config.HistorySize, tt.f)
		if got := s.Trend(); got != tt.want {
			t.Errorf("%s: Trend() got = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTrendNeedsTwoWindows(t *testing.T) {
	var s State
	feed(&s, 2*config.TrendWindow-1, func(i int) float32 { return float32(i) })
	if got := s.Trend(); got != TrendFlat {
		t.Fatalf("Trend() with short history got = %v, want TrendFlat", got)
	}
	s.Update(float32(100), false, t0, 100)
	if got := s.Trend(); got != TrendRising {
		t.Fatalf("Trend() with exactly 2K samples got = %v, want TrendRising", got)
	}
}

func TestTrendReversal(t *testing.T) {
	var s State
	feed(&s, config.HistorySize, func(i int) float32 { return 80 + float32(i)*0.4 })
	if got := s.Trend(); got != TrendRising {
		t.Fatalf("Trend() got = %v, want TrendRising", got)
	}
	// After at most half a window of falling samples the trend flips.
	flipped := false
	for i := 0; i < config.HistorySize/2; i++ {
		s.Update(100-float32(i)*2, false, t0, uint32(config.HistorySize+i))
		if s.Trend() == TrendFalling {
			flipped = true
			break
		}
	}
	if !flipped {
		t.Fatal("Trend() never flipped to TrendFalling within half a window")
	}
}

func TestRollingAverageMatchesRing(t *testing.T) {
	var s State
	var kept []float32
	n := (config.AvgSize + 20) * config.AvgStride
	for i := 0; i < n; i++ {
		v := float32(i % 173)
		s.Update(v, false, t0, uint32(i))
		if i%config.AvgStride == 0 {
			kept = append(kept, v)
			if len(kept) > config.AvgSize {
				kept = kept[1:]
			}
		}
	}
	var want float32
	for _, v := range kept {
		want += v
	}
	want /= float32(len(kept))
	got := s.Average()
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Fatalf("Average() got = %v, want %v", got, want)
	}
}

func TestPeakHoldWindow(t *testing.T) {
	var s State
	s.Update(1, true, t0, 0)
	if !s.IsPeak(t0) {
		t.Fatal("IsPeak(t0) got = false, want true")
	}
	if !s.IsPeak(t0.Add(config.PeakHold - time.Millisecond)) {
		t.Fatal("IsPeak just before expiry got = false, want true")
	}
	if s.IsPeak(t0.Add(config.PeakHold)) {
		t.Fatal("IsPeak at expiry got = true, want false")
	}
}

func TestZeroStateHasNoPeak(t *testing.T) {
	var s State
	if s.IsPeak(t0) {
		t.Fatal("IsPeak() on zero state got = true, want false")
	}
}

func TestGraphRingOrderAndBounds(t *testing.T) {
	var s State
	n := (config.GraphSize + 5) * config.GraphStride
	for i := 0; i < n; i++ {
		s.Update(float32(i), false, t0, uint32(i))
	}
	if s.GraphLen() != config.GraphSize {
		t.Fatalf("GraphLen() got = %d, want %d", s.GraphLen(), config.GraphSize)
	}
	// Oldest kept sample is from frame 5*GraphStride.
	for i := 0; i < s.GraphLen(); i++ {
		want := float32((i + 5) * config.GraphStride)
		if got := s.GraphAt(i); got != want {
			t.Fatalf("GraphAt(%d) got = %v, want %v", i, got, want)
		}
	}
	min, max := s.GraphBounds()
	if min != float32(5*config.GraphStride) || max != float32((config.GraphSize+4)*config.GraphStride) {
		t.Fatalf("GraphBounds() got = (%v, %v)", min, max)
	}
}

func TestResetKeepsHistory(t *testing.T) {
	var s State
	feed(&s, config.HistorySize, func(i int) float32 { return float32(i) })
	s.Update(99, true, t0, uint32(config.GraphStride))
	s.Reset(42)
	if s.GraphLen() != 0 {
		t.Fatalf("GraphLen() after Reset got = %d, want 0", s.GraphLen())
	}
	// The average collapses onto the reset sample immediately, never to 0.
	if s.Average() != 42 {
		t.Fatalf("Average() after Reset got = %v, want 42", s.Average())
	}
	if s.IsPeak(t0) {
		t.Fatal("IsPeak() after Reset got = true, want false")
	}
	if s.HistoryLen() != config.HistorySize {
		t.Fatalf("HistoryLen() after Reset got = %d, want %d", s.HistoryLen(), config.HistorySize)
	}
}

func TestResetThenUpdateAveragesBothSamples(t *testing.T) {
	var s State
	s.Reset(10)
	s.Update(20, false, t0, 0)
	if got := s.Average(); got != 15 {
		t.Fatalf("Average() got = %v, want 15", got)
	}
}

func TestRegisterLastValue(t *testing.T) {
	var r Register
	if got := r.Load(); got != (Samples{}) {
		t.Fatalf("Load() on empty register got = %+v, want zero", got)
	}
	r.Store(Samples{BoostBar: 1.2, EGTC: 700})
	r.Store(Samples{BoostBar: 1.5, EGTC: 720})
	got := r.Load()
	if got.BoostBar != 1.5 || got.EGTC != 720 {
		t.Fatalf("Load() got = %+v, want latest store", got)
	}
}
