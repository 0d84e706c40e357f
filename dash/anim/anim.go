// Package anim drives the dashboard's per-frame motion: cell background
// color transitions, the shake offset of critical cells and the shared
// blink phase.
package anim

import (
	"math"

	"obdash/dash/config"
)

// Per-frame channel steps in RGB565 units. Green carries six bits, so it
// moves twice as fast to keep the perceived rate uniform; every channel
// converges within 16 frames from the worst case.
const (
	stepR = 2
	stepG = 4
	stepB = 2
)

// Transition eases one RGB565 color toward a target. Each Step moves every
// channel by at most its step constant and never overshoots.
type Transition struct {
	current uint16
	target  uint16
}

// NewTransition returns a transition resting at p.
func NewTransition(p uint16) Transition {
	return Transition{current: p, target: p}
}

// SetTarget retargets the transition without disturbing the current color.
func (t *Transition) SetTarget(p uint16) { t.target = p }

// Current returns the color to draw this frame.
func (t *Transition) Current() uint16 { return t.current }

// Done reports whether the transition has settled.
func (t *Transition) Done() bool { return t.current == t.target }

// Step advances one frame. It reports whether the color changed.
func (t *Transition) Step() bool {
	if t.current == t.target {
		return false
	}
	cr, cg, cb := unpack(t.current)
	tr, tg, tb := unpack(t.target)
	t.current = pack(
		approach(cr, tr, stepR),
		approach(cg, tg, stepG),
		approach(cb, tb, stepB),
	)
	return true
}

func approach(cur, want, step int) int {
	d := want - cur
	if d > step {
		d = step
	} else if d < -step {
		d = -step
	}
	return cur + d
}

func unpack(p uint16) (r, g, b int) {
	return int(p>>11) & 0x1F, int(p>>5) & 0x3F, int(p) & 0x1F
}

func pack(r, g, b int) uint16 {
	return uint16(r&0x1F)<<11 | uint16(g&0x3F)<<5 | uint16(b&0x1F)
}

// CellCount is the number of animated dashboard cells.
const CellCount = 8

// Set animates all cell backgrounds together.
type Set struct {
	cells [CellCount]Transition
}

// SetTarget retargets cell i.
func (s *Set) SetTarget(i int, p uint16) { s.cells[i].SetTarget(p) }

// Current returns the color cell i shows this frame.
func (s *Set) Current(i int) uint16 { return s.cells[i].Current() }

// Step advances every cell one frame and returns a bitmask of the cells
// whose color changed, bit i for cell i.
func (s *Set) Step() uint8 {
	var changed uint8
	for i := range s.cells {
		if s.cells[i].Step() {
			changed |= 1 << i
		}
	}
	return changed
}

// Shake amplitude in pixels and angular step per frame.
const (
	shakeAmp  = 2.0
	shakeFreq = 0.5
)

// ShakeOffset returns the horizontal jitter for a critical cell, 0 when the
// cell is calm.
func ShakeOffset(frame uint32, critical bool) int {
	if !critical {
		return 0
	}
	return int(math.Round(math.Sin(float64(frame)*shakeFreq) * shakeAmp))
}

// BlinkOn reports the shared blink phase; critical cells show their color
// while true and black while false.
func BlinkOn(frame uint32) bool {
	return (frame/config.BlinkHalfPeriod)%2 == 0
}
