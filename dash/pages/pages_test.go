package pages

import "testing"

func TestPageCycleIdentity(t *testing.T) {
	for start := Page(0); start < pageCount; start++ {
		p := start
		for i := 0; i < 3; i++ {
			p = p.Next()
		}
		if p != start {
			t.Fatalf("Next()^3 from %d got = %d, want identity", start, p)
		}
	}
}

func TestPageOrder(t *testing.T) {
	if Dashboard.Next() != Debug || Debug.Next() != Logs || Logs.Next() != Dashboard {
		t.Fatal("page order is not Dashboard -> Debug -> Logs -> Dashboard")
	}
}

func TestControllerAdvance(t *testing.T) {
	var c Controller
	if c.Current() != Dashboard {
		t.Fatalf("Current() got = %v, want Dashboard", c.Current())
	}
	if got := c.Advance(); got != Debug {
		t.Fatalf("Advance() got = %v, want Debug", got)
	}
	c.Advance()
	if got := c.Advance(); got != Dashboard {
		t.Fatalf("third Advance() got = %v, want Dashboard", got)
	}
}

func TestTitles(t *testing.T) {
	tests := []struct {
		page Page
		want string
	}{
		{Dashboard, "OBD DASHBOARD"},
		{Debug, "DEBUG"},
		{Logs, "LOGS"},
	}
	for _, tt := range tests {
		if got := tt.page.Title(); got != tt.want {
			t.Errorf("Title(%d) got = %q, want %q", tt.page, got, tt.want)
		}
	}
}
