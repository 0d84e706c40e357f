package render

// State carries the between-frame bookkeeping for conditional redraws of
// static chrome. Animated cells repaint every frame; the header and the
// divider grid only when something that touches them changed. Because
// frames alternate between two buffers, everything is tracked per buffer:
// chrome drawn into one framebuffer is still stale in the other.
type State struct {
	headerDrawn   [2]bool
	dividersDrawn [2]bool

	prevMode   [2]FpsMode
	prevHeader [2]string

	prevOverlay     bool
	popupJustClosed bool

	clearFrames  int
	clearedFrame bool
}

// NewState returns bookkeeping armed for the first frame in both buffers.
func NewState() *State { return &State{} }

// BeginFrame ingests whether any overlay (user popup or warning) is visible
// this frame. It must run once per frame before the redraw queries; the
// close edge of an overlay schedules a full clear of both buffers to erase
// its border.
func (s *State) BeginFrame(overlayVisible bool) {
	s.popupJustClosed = s.prevOverlay && !overlayVisible
	s.prevOverlay = overlayVisible
	s.clearedFrame = false
	if s.popupJustClosed {
		s.RequestClear()
	}
}

// HeaderNeedsRedraw reports whether buffer buf must repaint the header for
// the given mode and formatted fps string.
func (s *State) HeaderNeedsRedraw(buf int, mode FpsMode, formatted string) bool {
	buf &= 1
	if !s.headerDrawn[buf] || s.popupJustClosed || s.clearedFrame {
		return true
	}
	return mode != s.prevMode[buf] || formatted != s.prevHeader[buf]
}

// MarkHeaderDrawn records what the header in buffer buf now shows.
func (s *State) MarkHeaderDrawn(buf int, mode FpsMode, formatted string) {
	buf &= 1
	s.headerDrawn[buf] = true
	s.prevMode[buf] = mode
	s.prevHeader[buf] = formatted
}

// DividersNeedRedraw reports whether buffer buf must repaint the grid.
func (s *State) DividersNeedRedraw(buf int) bool {
	return !s.dividersDrawn[buf&1] || s.popupJustClosed || s.clearedFrame
}

// MarkDividersDrawn records the grid as painted in buffer buf.
func (s *State) MarkDividersDrawn(buf int) { s.dividersDrawn[buf&1] = true }

// RequestClear schedules a full background clear for the next two frames,
// one per buffer, so stale pixels cannot survive in either framebuffer.
func (s *State) RequestClear() { s.clearFrames = 2 }

// TakeClear consumes one scheduled clear and reports whether this frame
// must start from a cleared background. It must run before the redraw
// queries: a cleared buffer always repaints its chrome.
func (s *State) TakeClear() bool {
	if s.clearFrames == 0 {
		return false
	}
	s.clearFrames--
	s.clearedFrame = true
	return true
}

// Rearm resets the chrome bookkeeping after a page switch so the header and
// dividers repaint in both buffers on return to the Dashboard.
func (s *State) Rearm() {
	s.headerDrawn = [2]bool{}
	s.dividersDrawn = [2]bool{}
	s.RequestClear()
}

// PopupJustClosed reports the overlay close edge computed by BeginFrame.
func (s *State) PopupJustClosed() bool { return s.popupJustClosed }
