//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// HostLogger writes log lines to stdout.
type HostLogger struct {
	mu sync.Mutex
	w  *os.File
}

// NewHostLogger returns a stdout logger.
func NewHostLogger() *HostLogger { return &HostLogger{w: os.Stdout} }

func (l *HostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *HostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// HostCycles fakes the CPU cycle counter from the wall clock at a nominal
// 150 MHz, good enough for the Debug page numbers on desktop.
type HostCycles struct {
	start time.Time
}

const hostCPUHz = 150_000_000

// NewHostCycles returns a running counter.
func NewHostCycles() *HostCycles { return &HostCycles{start: time.Now()} }

func (c *HostCycles) Read() uint32 {
	return uint32(uint64(time.Since(c.start)) * hostCPUHz / uint64(time.Second))
}

func (c *HostCycles) FreqHz() uint32 { return hostCPUHz }

// NullFlusher discards frames; headless runs use it when no window is
// wanted.
type NullFlusher struct{}

func (NullFlusher) Flush([]byte) error { return nil }
