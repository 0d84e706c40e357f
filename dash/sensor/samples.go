package sensor

import "sync/atomic"

// Samples is one decoded reading of every sensor the dashboard shows.
type Samples struct {
	BoostBar float32
	AFR      float32
	BatteryV float32
	CoolantC float32
	OilC     float32
	DSGC     float32
	IATC     float32
	EGTC     float32
}

// Register is a last-value cell between the acquisition side and the
// renderer. Writers replace the whole record; the renderer loads it once
// per frame.
type Register struct {
	p atomic.Pointer[Samples]
}

// Store publishes a new reading.
func (r *Register) Store(s Samples) { r.p.Store(&s) }

// Load returns the latest reading, or the zero record before the first
// Store.
func (r *Register) Load() Samples {
	if p := r.p.Load(); p != nil {
		return *p
	}
	return Samples{}
}
