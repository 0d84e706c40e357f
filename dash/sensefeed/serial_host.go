//go:build !tinygo

package sensefeed

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/tarm/serial"

	"obdash/dash/logbuf"
	"obdash/dash/sensor"
)

// SerialFeed reads telemetry lines from a serial port and publishes each
// decoded record to the register. Malformed lines are logged and skipped.
type SerialFeed struct {
	port *serial.Port
	reg  *sensor.Register
	logs *logbuf.Buffer
}

// OpenSerial opens the telemetry port.
func OpenSerial(device string, baud int, reg *sensor.Register, logs *logbuf.Buffer) (*SerialFeed, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}
	return &SerialFeed{port: port, reg: reg, logs: logs}, nil
}

// Run consumes lines until the port errors out or ctx is canceled. The read
// timeout bounds how long cancellation can lag.
func (f *SerialFeed) Run(ctx context.Context) error {
	sc := bufio.NewScanner(f.port)
	start := time.Now()
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		if line == "" {
			continue
		}
		s, err := ParseLine(line)
		if err != nil {
			f.logs.Push(logbuf.Warn, "feed: "+err.Error(), uint32(time.Since(start)/time.Millisecond))
			continue
		}
		f.reg.Store(s)
	}
	return sc.Err()
}

// Close releases the port.
func (f *SerialFeed) Close() error { return f.port.Close() }
