//go:build tinygo && baremetal

package sensefeed

import (
	"machine"
	"time"

	"obdash/dash/logbuf"
	"obdash/dash/sensor"
)

// lineMax bounds one telemetry line; longer lines are dropped whole.
const lineMax = 96

// RunUARTFeed reads telemetry lines from the UART and publishes each decoded
// record. It never returns; run it on its own goroutine.
func RunUARTFeed(uart *machine.UART, reg *sensor.Register, logs *logbuf.Buffer) {
	var line [lineMax]byte
	n := 0
	overflow := false
	start := time.Now()
	for {
		if uart.Buffered() == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		c, err := uart.ReadByte()
		if err != nil {
			continue
		}
		switch c {
		case '\r':
			// Tolerated, ignored.
		case '\n':
			if n > 0 && !overflow {
				s, err := ParseLine(string(line[:n]))
				if err != nil {
					logs.Push(logbuf.Warn, "feed: "+err.Error(), uint32(time.Since(start)/time.Millisecond))
				} else {
					reg.Store(s)
				}
			}
			n = 0
			overflow = false
		default:
			if n < len(line) {
				line[n] = c
				n++
			} else {
				overflow = true
			}
		}
	}
}
