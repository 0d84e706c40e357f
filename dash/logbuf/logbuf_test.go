package logbuf

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"obdash/dash/config"
)

func TestPushAndSnapshotOrder(t *testing.T) {
	var b Buffer
	for i := 0; i < 5; i++ {
		if !b.Push(Info, fmt.Sprintf("entry %d", i), uint32(i)) {
			t.Fatalf("Push(%d) got = false, want true", i)
		}
	}
	got := b.Snapshot(make([]Entry, config.LogCap))
	if len(got) != 5 {
		t.Fatalf("Snapshot() len got = %d, want 5", len(got))
	}
	for i, e := range got {
		if e.Msg != fmt.Sprintf("entry %d", i) || e.TimestampMS != uint32(i) {
			t.Fatalf("Snapshot()[%d] got = %+v", i, e)
		}
	}
}

func TestOverflowKeepsNewest(t *testing.T) {
	var b Buffer
	total := config.LogCap*2 + 3
	for i := 0; i < total; i++ {
		b.Push(Debug, fmt.Sprintf("line %d", i), uint32(i))
	}
	got := b.Snapshot(make([]Entry, config.LogCap))
	if len(got) != config.LogCap {
		t.Fatalf("Snapshot() len got = %d, want %d", len(got), config.LogCap)
	}
	first := total - config.LogCap
	for i, e := range got {
		want := fmt.Sprintf("line %d", first+i)
		if e.Msg != want {
			t.Fatalf("Snapshot()[%d].Msg got = %q, want %q", i, e.Msg, want)
		}
	}
}

func TestPushTruncates(t *testing.T) {
	var b Buffer
	long := strings.Repeat("x", config.LogMsgLen+25)
	b.Push(Warn, long, 0)
	got := b.Snapshot(make([]Entry, 1))
	if len(got[0].Msg) != config.LogMsgLen {
		t.Fatalf("stored message len got = %d, want %d", len(got[0].Msg), config.LogMsgLen)
	}
}

func TestPushTruncatesOnRuneBoundary(t *testing.T) {
	var b Buffer
	// A multibyte rune straddling the cutoff is dropped whole, never split.
	msg := strings.Repeat("x", config.LogMsgLen-1) + "é"
	b.Push(Warn, msg, 0)
	got := b.Snapshot(make([]Entry, 1))
	if !utf8.ValidString(got[0].Msg) {
		t.Fatalf("stored message %q is not valid UTF-8", got[0].Msg)
	}
	if want := strings.Repeat("x", config.LogMsgLen-1); got[0].Msg != want {
		t.Fatalf("stored message got = %q, want %q", got[0].Msg, want)
	}
}

func TestLevelRunes(t *testing.T) {
	tests := []struct {
		level Level
		want  byte
	}{
		{Trace, 'T'}, {Debug, 'D'}, {Info, 'I'}, {Warn, 'W'}, {Error, 'E'}, {Level(99), '?'},
	}
	for _, tt := range tests {
		if got := tt.level.Rune(); got != tt.want {
			t.Errorf("Level(%d).Rune() got = %c, want %c", tt.level, got, tt.want)
		}
	}
}

type recordingEcho struct {
	lines []string
}

func (r *recordingEcho) WriteLineString(s string) { r.lines = append(r.lines, s) }

func TestEchoMirrorsEntries(t *testing.T) {
	var echo recordingEcho
	b := Buffer{Echo: &echo}
	b.Push(Error, "flush failed", 123)
	if len(echo.lines) != 1 || echo.lines[0] != "[E] flush failed" {
		t.Fatalf("echo lines got = %q", echo.lines)
	}
}

func TestPushDropsOnContention(t *testing.T) {
	var b Buffer
	b.mu.Lock()
	if b.Push(Info, "should drop", 0) {
		t.Fatal("Push() under a held lock got = true, want false")
	}
	b.mu.Unlock()
	if b.Len() != 0 {
		t.Fatalf("Len() got = %d, want 0", b.Len())
	}
}
