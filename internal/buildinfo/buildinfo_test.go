package buildinfo

import "testing"

func TestShortFallsBackToDev(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = ""
	if got := Short(); got != "dev" {
		t.Fatalf("Short() with empty version got = %q, want %q", got, "dev")
	}
	Version = "v1.4.2"
	if got := Short(); got != "v1.4.2" {
		t.Fatalf("Short() got = %q, want %q", got, "v1.4.2")
	}
}
