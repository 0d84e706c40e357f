// Package pipeline drives the dashboard: a renderer loop producing frames
// into the double buffer and a flusher goroutine streaming them to the
// display. The two sides meet in a one-deep signal/ack handshake that
// guarantees a buffer is never rendered into while its DMA is in flight.
package pipeline

import (
	"context"
	"time"

	"obdash/dash/config"
	"obdash/dash/framebuf"
	"obdash/dash/input"
	"obdash/dash/logbuf"
	"obdash/dash/pages"
	"obdash/dash/profile"
	"obdash/dash/render"
	"obdash/dash/sensor"
)

// Flusher pushes one full frame over the display bus. It blocks until the
// transfer is complete.
type Flusher interface {
	Flush(buf []byte) error
}

// Cycles reads the free-running CPU cycle counter.
type Cycles interface {
	Read() uint32
	FreqHz() uint32
}

// LED is the heartbeat output, toggled once per frame.
type LED interface {
	High()
	Low()
}

// Options wires a Pipeline. Flusher, Cycles, Buttons, Samples and Logs are
// required; the rest default.
type Options struct {
	Flusher Flusher
	Cycles  Cycles
	Buttons func() input.Levels
	Samples *sensor.Register
	Logs    *logbuf.Buffer
	LED     LED
	Version string

	// Test seams; nil means the real clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

type flushResult struct {
	idx    int
	cycles uint32
}

// Pipeline owns all per-frame state. Only the renderer goroutine touches
// it; the flusher sees nothing but buffer indices.
type Pipeline struct {
	opt Options

	db  *framebuf.DoubleBuffer
	tgt *framebuf.Renderer

	ready chan int
	done  chan flushResult

	inFlight  bool
	swaps     uint32
	waits     uint32
	lastFlush flushResult

	page    pages.Controller
	rstate  *render.State
	popups  render.Popups
	buttons input.Buttons
	fpsMode render.FpsMode
	unitPSI bool

	cells  cellSet
	fps    profile.FPS
	frame  uint32
	epoch  time.Time
	last   time.Time
	haveT  bool
	frameD time.Duration

	renderCycles uint32
	freqHz       uint32
	changedMask  uint8
	peakEvents   uint32

	resetRequested  bool
	dangerActive    bool
	ledOn           bool
	splashRemaining int
}

// New builds a pipeline around the given platform pieces.
func New(o Options) *Pipeline {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	db := framebuf.New()
	p := &Pipeline{
		opt:    o,
		db:     db,
		tgt:    framebuf.NewRenderer(db),
		ready:  make(chan int, 1),
		done:   make(chan flushResult, 1),
		rstate: render.NewState(),
		freqHz: profile.SaneFreq(o.Cycles.FreqHz()),
		epoch:  o.Now(),
		// A couple of splash frames cover both buffers while the first
		// samples arrive.
		splashRemaining: 2,
	}
	return p
}

// Run starts the flusher goroutine and loops the renderer until ctx is
// canceled.
func (p *Pipeline) Run(ctx context.Context) error {
	go p.runFlusher(ctx)

	p.opt.Logs.Push(logbuf.Info, "dashboard up "+p.opt.Version, p.nowMS())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := p.opt.Now()
		p.stepFrame(start)
		p.pace(start)
	}
}

// RunFrames renders exactly n frames, for headless runs and tests.
func (p *Pipeline) RunFrames(ctx context.Context, n uint64) error {
	go p.runFlusher(ctx)
	for i := uint64(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := p.opt.Now()
		p.stepFrame(start)
		p.pace(start)
	}
	return nil
}

func (p *Pipeline) pace(frameStart time.Time) {
	deadline := frameStart.Add(config.FramePeriod)
	if d := deadline.Sub(p.opt.Now()); d > 0 {
		p.opt.Sleep(d)
	}
	// Overruns skip the sleep; there is no catch-up queue.
}

func (p *Pipeline) runFlusher(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// Ack any pending submission so the renderer cannot block on
			// a flusher that is gone.
			select {
			case idx := <-p.ready:
				p.done <- flushResult{idx: idx}
			default:
			}
			return
		case idx := <-p.ready:
			start := p.opt.Cycles.Read()
			if err := p.opt.Flusher.Flush(p.db.Buf(idx)); err != nil {
				// Treat the flush as complete so the handshake advances;
				// the next frame retries naturally.
				p.opt.Logs.Push(logbuf.Error, "flush: "+err.Error(), p.nowMS())
			}
			elapsed := profile.Elapsed(start, p.opt.Cycles.Read())
			p.done <- flushResult{idx: idx, cycles: elapsed}
		}
	}
}

// submit hands the just-rendered buffer to the flusher and swaps. If the
// previous flush is still in flight the renderer blocks here, counting the
// wait.
func (p *Pipeline) submit() {
	if p.inFlight {
		select {
		case r := <-p.done:
			p.lastFlush = r
		default:
			p.waits++
			p.lastFlush = <-p.done
		}
		p.inFlight = false
	}
	idx := p.db.RenderIndex()
	p.db.Swap()
	p.swaps++
	p.ready <- idx
	p.inFlight = true
}

func (p *Pipeline) nowMS() uint32 {
	return uint32(p.opt.Now().Sub(p.epoch) / time.Millisecond)
}

// Swaps returns the number of buffers submitted so far.
func (p *Pipeline) Swaps() uint32 { return p.swaps }

// Waits returns how often the renderer blocked on the flusher.
func (p *Pipeline) Waits() uint32 { return p.waits }
