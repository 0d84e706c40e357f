package pipeline

import (
	"time"

	"obdash/dash/anim"
	"obdash/dash/sensor"
)

// Cell indices, grid order: top row boost, AFR, battery, coolant; bottom
// row oil, DSG, IAT, EGT.
const (
	cellBoost = iota
	cellAFR
	cellBatt
	cellCoolant
	cellOil
	cellDSG
	cellIAT
	cellEGT
)

// track couples one sensor's state engine with its session aggregates.
type track struct {
	state    sensor.State
	min, max float32
	seeded   bool

	// Battery highlights a new minimum instead of a new maximum.
	peakOnMin bool
}

// observe feeds one sample, maintaining min/max and flagging a new extreme
// for the peak-hold highlight.
func (t *track) observe(v float32, now time.Time, frame uint32) {
	extreme := false
	if !t.seeded {
		t.min, t.max, t.seeded = v, v, true
	} else {
		if v > t.max {
			t.max = v
			extreme = !t.peakOnMin
		}
		if v < t.min {
			t.min = v
			extreme = extreme || t.peakOnMin
		}
	}
	t.state.Update(v, extreme, now, frame)
}

// reseed collapses the aggregates onto the current sample and clears the
// derived state, keeping trend history.
func (t *track) reseed(v float32) {
	t.min, t.max, t.seeded = v, v, true
	t.state.Reset(v)
}

// cellSet owns the eight tracks and their background transitions.
type cellSet struct {
	tracks [anim.CellCount]track
	colors anim.Set
	init   bool
}

func (c *cellSet) setup() {
	c.tracks[cellBatt].peakOnMin = true
	c.init = true
}

func (c *cellSet) values(s sensor.Samples) [anim.CellCount]float32 {
	return [anim.CellCount]float32{
		cellBoost:   s.BoostBar,
		cellAFR:     s.AFR,
		cellBatt:    s.BatteryV,
		cellCoolant: s.CoolantC,
		cellOil:     s.OilC,
		cellDSG:     s.DSGC,
		cellIAT:     s.IATC,
		cellEGT:     s.EGTC,
	}
}

// observe feeds a full sample record into every track and returns how many
// cells hit a new peak this frame.
func (c *cellSet) observe(s sensor.Samples, now time.Time, frame uint32) int {
	if !c.init {
		c.setup()
	}
	peaks := 0
	for i, v := range c.values(s) {
		before := c.tracks[i].state.IsPeak(now)
		c.tracks[i].observe(v, now, frame)
		if !before && c.tracks[i].state.IsPeak(now) {
			peaks++
		}
	}
	return peaks
}

// reseed resets every track onto the current sample record.
func (c *cellSet) reseed(s sensor.Samples) {
	if !c.init {
		c.setup()
	}
	for i, v := range c.values(s) {
		c.tracks[i].reseed(v)
	}
}
