// Package app assembles the dashboard from platform pieces.
package app

import (
	"obdash/dash/input"
	"obdash/dash/logbuf"
	"obdash/dash/pipeline"
	"obdash/dash/sensor"
	"obdash/hal"
	"obdash/internal/buildinfo"
)

// Platform is what a target must provide: the display flusher, the cycle
// counter, the button sampler and optionally a heartbeat LED and a serial
// log mirror.
type Platform struct {
	Flusher pipeline.Flusher
	Cycles  pipeline.Cycles
	Buttons func() input.Levels
	LED     pipeline.LED
	Logger  hal.Logger
}

// System is the assembled dashboard.
type System struct {
	Pipeline *pipeline.Pipeline
	Samples  *sensor.Register
	Logs     *logbuf.Buffer
}

// New wires the log ring, the sample register and the frame pipeline.
func New(p Platform) *System {
	logs := &logbuf.Buffer{}
	if p.Logger != nil {
		logs.Echo = p.Logger
	}
	reg := &sensor.Register{}
	pl := pipeline.New(pipeline.Options{
		Flusher: p.Flusher,
		Cycles:  p.Cycles,
		Buttons: p.Buttons,
		Samples: reg,
		Logs:    logs,
		LED:     p.LED,
		Version: buildinfo.Short(),
	})
	return &System{Pipeline: pl, Samples: reg, Logs: logs}
}
