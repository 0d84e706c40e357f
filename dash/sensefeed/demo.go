package sensefeed

import (
	"context"
	"math"
	"time"

	"obdash/dash/sensor"
)

// DemoAt synthesizes the sample record for one instant of the demo sweep.
// Every channel is a slow sine chosen so its full color band range is
// covered, including the critical ends and the boost easter egg.
func DemoAt(t time.Duration) sensor.Samples {
	sec := t.Seconds()
	wave := func(period, min, max float64) float32 {
		phase := math.Sin(2 * math.Pi * sec / period)
		return float32(min + (max-min)*(phase+1)/2)
	}
	return sensor.Samples{
		BoostBar: wave(8, -0.8, 2.1),
		AFR:      wave(13, 10.5, 16.5),
		BatteryV: wave(21, 11.4, 14.4),
		CoolantC: wave(17, 40, 105),
		OilC:     wave(19, 50, 125),
		DSGC:     wave(23, 50, 118),
		IATC:     wave(29, -25, 70),
		EGTC:     wave(11, 200, 1150),
	}
}

// RunDemo feeds the register with the synthetic sweep until ctx is canceled.
func RunDemo(ctx context.Context, reg *sensor.Register, interval time.Duration) {
	start := time.Now()
	reg.Store(DemoAt(0))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			reg.Store(DemoAt(now.Sub(start)))
		}
	}
}
