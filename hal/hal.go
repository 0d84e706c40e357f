// Package hal binds the dashboard to a platform: the display flusher, the
// cycle counter, the button lines, the heartbeat LED and the serial log
// mirror. The host build draws into a desktop window; the TinyGo build
// drives the real panel over SPI.
package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}
