package render

import (
	"time"

	"obdash/dash/config"
)

// PopupKind discriminates the popup variants.
type PopupKind uint8

const (
	PopupReset PopupKind = iota
	PopupFPS
	PopupBoostUnit
	PopupWarning
)

// Popup is a time-limited overlay. At most one is active; a new trigger
// replaces the previous one.
type Popup struct {
	Kind PopupKind
	T0   time.Time
}

// Expired reports whether the popup's lifetime has elapsed.
func (p Popup) Expired(now time.Time) bool {
	return now.Sub(p.T0) >= config.PopupTTL
}

// Popups owns the single active popup slot.
type Popups struct {
	active Popup
	set    bool
}

// Trigger replaces the active popup.
func (ps *Popups) Trigger(kind PopupKind, now time.Time) {
	ps.active = Popup{Kind: kind, T0: now}
	ps.set = true
}

// Active returns the live popup, dropping it on expiry.
func (ps *Popups) Active(now time.Time) (Popup, bool) {
	if !ps.set {
		return Popup{}, false
	}
	if ps.active.Expired(now) {
		ps.set = false
		return Popup{}, false
	}
	return ps.active, true
}

// Dismiss drops the active popup immediately.
func (ps *Popups) Dismiss() { ps.set = false }
