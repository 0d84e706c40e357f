// Package logbuf is the on-screen log: a fixed ring of leveled entries
// behind a try-lock. Pushes never block the frame pipeline; on contention
// the entry is dropped.
package logbuf

import (
	"sync"
	"unicode/utf8"

	"obdash/dash/config"
)

// Level classifies a log entry.
type Level uint8

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
)

// Rune returns the one-character prefix shown on the Logs page.
func (l Level) Rune() byte {
	switch l {
	case Trace:
		return 'T'
	case Debug:
		return 'D'
	case Info:
		return 'I'
	case Warn:
		return 'W'
	case Error:
		return 'E'
	}
	return '?'
}

// Entry is one stored log line.
type Entry struct {
	Level       Level
	Msg         string
	TimestampMS uint32
}

// Echo receives every successfully stored entry, typically a serial
// console.
type Echo interface {
	WriteLineString(s string)
}

// Buffer is the ring. The zero value is usable; Echo may be set before the
// first push.
type Buffer struct {
	mu      sync.Mutex
	entries [config.LogCap]Entry
	head    int
	count   int

	Echo Echo
}

// Push stores an entry, truncating the message to the display width on a
// rune boundary. It reports whether the entry was stored; a contended lock
// drops it.
func (b *Buffer) Push(level Level, msg string, nowMS uint32) bool {
	if len(msg) > config.LogMsgLen {
		n := config.LogMsgLen
		for n > 0 && !utf8.RuneStart(msg[n]) {
			n--
		}
		msg = msg[:n]
	}
	if !b.mu.TryLock() {
		return false
	}
	b.entries[b.head] = Entry{Level: level, Msg: msg, TimestampMS: nowMS}
	b.head = (b.head + 1) % len(b.entries)
	if b.count < len(b.entries) {
		b.count++
	}
	echo := b.Echo
	b.mu.Unlock()

	if echo != nil {
		echo.WriteLineString("[" + string(level.Rune()) + "] " + msg)
	}
	return true
}

// Snapshot copies the stored entries oldest first into dst and returns the
// slice written. The Logs page passes a stack-backed dst to avoid per-frame
// allocation.
func (b *Buffer) Snapshot(dst []Entry) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.count
	if n > len(dst) {
		n = len(dst)
	}
	start := b.head - b.count
	if start < 0 {
		start += len(b.entries)
	}
	for i := 0; i < n; i++ {
		dst[i] = b.entries[(start+i)%len(b.entries)]
	}
	return dst[:n]
}

// Len returns the number of stored entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}
