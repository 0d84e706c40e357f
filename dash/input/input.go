// Package input debounces the four dashboard buttons and maps accepted
// press edges to pipeline actions.
package input

import (
	"time"

	"obdash/dash/config"
)

// Debouncer tracks one active-low button. A level change is accepted only
// after the debounce interval has passed since the previously accepted
// change; everything else is contact bounce.
type Debouncer struct {
	pressed    bool
	lastChange time.Time
	hasChange  bool
}

// JustPressed feeds one sampled level (true = line pulled low = held) and
// reports a debounced press edge. Release edges update state but return
// false.
func (d *Debouncer) JustPressed(levelLow bool, now time.Time) bool {
	if levelLow == d.pressed {
		return false
	}
	if d.hasChange && now.Sub(d.lastChange) < config.Debounce {
		return false
	}
	d.pressed = levelLow
	d.lastChange = now
	d.hasChange = true
	return d.pressed
}

// Pressed returns the current debounced level.
func (d *Debouncer) Pressed() bool { return d.pressed }

// Levels is one per-frame sample of the four button lines, true meaning the
// line is low (button held).
type Levels struct {
	A, B, X, Y bool
}

// Events marks which buttons produced an accepted press edge this frame.
type Events struct {
	A, B, X, Y bool
}

// Buttons debounces all four lines together.
type Buttons struct {
	a, b, x, y Debouncer
}

// Poll feeds one sample of every line and returns the press edges.
func (bs *Buttons) Poll(l Levels, now time.Time) Events {
	return Events{
		A: bs.a.JustPressed(l.A, now),
		B: bs.b.JustPressed(l.B, now),
		X: bs.x.JustPressed(l.X, now),
		Y: bs.y.JustPressed(l.Y, now),
	}
}

// Actions is the frame's decoded button intent.
type Actions struct {
	CycleFPSMode    bool
	CyclePage       bool
	ToggleBoostUnit bool
	ResetStats      bool
}

// Map converts press edges into actions. Page cycling works everywhere; the
// other three only act on the Dashboard page and are dropped elsewhere.
func Map(ev Events, onDashboard bool) Actions {
	return Actions{
		CycleFPSMode:    ev.X && onDashboard,
		CyclePage:       ev.Y,
		ToggleBoostUnit: ev.A && onDashboard,
		ResetStats:      ev.B && onDashboard,
	}
}
