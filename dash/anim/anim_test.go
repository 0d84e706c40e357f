package anim

import (
	"testing"

	"obdash/dash/config"
)

func TestTransitionConvergesWithoutOvershoot(t *testing.T) {
	pairs := []struct {
		name     string
		from, to uint16
	}{
		{"black to white", 0x0000, 0xFFFF},
		{"white to black", 0xFFFF, 0x0000},
		{"red to green", 0xF800, 0x07E0},
		{"near neighbors", 0x8410, 0x8411},
		{"same", 0x1234, 0x1234},
	}
	for _, tt := range pairs {
		tr := NewTransition(tt.from)
		tr.SetTarget(tt.to)

		fr, fg, fb := unpack(tt.from)
		wr, wg, wb := unpack(tt.to)
		pr, pg, pb := fr, fg, fb

		// Worst case channel delta over channel step is 16 frames.
		for i := 0; i < 16 && !tr.Done(); i++ {
			tr.Step()
			cr, cg, cb := unpack(tr.Current())
			if !monotone(pr, cr, wr) || !monotone(pg, cg, wg) || !monotone(pb, cb, wb) {
				t.Fatalf("%s: channel moved past target at frame %d: %#04x", tt.name, i, tr.Current())
			}
			pr, pg, pb = cr, cg, cb
		}
		if !tr.Done() {
			t.Fatalf("%s: Current() got = %#04x, want %#04x after 16 frames", tt.name, tr.Current(), tt.to)
		}
	}
}

// monotone checks cur stayed between prev and want, i.e. moved toward want
// without overshooting.
func monotone(prev, cur, want int) bool {
	if prev <= want {
		return cur >= prev && cur <= want
	}
	return cur <= prev && cur >= want
}

func TestTransitionStepReportsChange(t *testing.T) {
	tr := NewTransition(0x0000)
	if tr.Step() {
		t.Fatal("Step() on settled transition got = true, want false")
	}
	tr.SetTarget(0xFFFF)
	if !tr.Step() {
		t.Fatal("Step() toward new target got = false, want true")
	}
}

func TestSetChangeBitmask(t *testing.T) {
	var s Set
	s.SetTarget(0, 0xF800)
	s.SetTarget(3, 0x07E0)
	got := s.Step()
	if got != 0b0000_1001 {
		t.Fatalf("Step() bitmask got = %#08b, want 0b00001001", got)
	}
	for i := 0; i < 32; i++ {
		s.Step()
	}
	if got := s.Step(); got != 0 {
		t.Fatalf("Step() after settling got = %#08b, want 0", got)
	}
	if s.Current(0) != 0xF800 || s.Current(3) != 0x07E0 {
		t.Fatalf("Current() got = %#04x, %#04x", s.Current(0), s.Current(3))
	}
}

func TestShakeOffset(t *testing.T) {
	if got := ShakeOffset(17, false); got != 0 {
		t.Fatalf("ShakeOffset(calm) got = %d, want 0", got)
	}
	sawNonZero := false
	for f := uint32(0); f < 25; f++ {
		off := ShakeOffset(f, true)
		if off < -2 || off > 2 {
			t.Fatalf("ShakeOffset(%d) got = %d, want within [-2, 2]", f, off)
		}
		if off != 0 {
			sawNonZero = true
		}
	}
	if !sawNonZero {
		t.Fatal("ShakeOffset never moved over a full period")
	}
}

func TestBlinkPhase(t *testing.T) {
	// Over a whole number of periods exactly half the frames are dark.
	dark := 0
	for f := uint32(0); f < 36; f++ {
		if !BlinkOn(f) {
			dark++
		}
	}
	if dark != 18 {
		t.Fatalf("dark frames over 36 got = %d, want 18", dark)
	}
	for f := uint32(0); f < config.BlinkHalfPeriod; f++ {
		if !BlinkOn(f) {
			t.Fatalf("BlinkOn(%d) got = false, want true in first half period", f)
		}
		if BlinkOn(f + config.BlinkHalfPeriod) {
			t.Fatalf("BlinkOn(%d) got = true, want false in second half period", f+config.BlinkHalfPeriod)
		}
	}
}
