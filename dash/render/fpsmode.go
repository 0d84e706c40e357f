// Package render tracks what is on screen between frames: the fps display
// mode, the active popup, and the bookkeeping that decides when static
// chrome (header, dividers) must be redrawn.
package render

import "strconv"

// FpsMode selects how the header formats the frame rate.
type FpsMode uint8

const (
	FpsOff FpsMode = iota
	FpsInstant
	FpsAverage
	FpsCombined

	fpsModeCount
)

// Next returns the cyclic successor.
func (m FpsMode) Next() FpsMode { return (m + 1) % fpsModeCount }

// Shown reports whether the mode displays anything.
func (m FpsMode) Shown() bool { return m != FpsOff }

// Label is the text shown in the fps popup when the mode is selected.
func (m FpsMode) Label() string {
	switch m {
	case FpsOff:
		return "FPS: OFF"
	case FpsInstant:
		return "FPS: INSTANT"
	case FpsAverage:
		return "FPS: AVERAGE"
	case FpsCombined:
		return "FPS: BOTH"
	}
	return "FPS: ?"
}

// Format renders the header string for the rounded instant and average
// rates. FpsOff formats to the empty string.
func (m FpsMode) Format(inst, avg int) string {
	switch m {
	case FpsInstant:
		return strconv.Itoa(inst) + " FPS"
	case FpsAverage:
		return strconv.Itoa(avg) + " AVG"
	case FpsCombined:
		return strconv.Itoa(inst) + "/" + strconv.Itoa(avg) + " FPS"
	}
	return ""
}
