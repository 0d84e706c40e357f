// Package framebuf owns the two full-screen RGB565 framebuffers and the
// draw target the widget layer renders through. Pixels are stored big-endian
// per pixel, the byte order the display bus expects, so a buffer can be
// streamed out without conversion.
package framebuf

import "obdash/dash/config"

// DoubleBuffer holds the two fixed framebuffers. At any instant one is the
// render buffer (written by the renderer) and the other is the flush buffer
// (read by the flusher). Ownership flips at Swap; the pipeline's handshake
// guarantees the flusher is idle when Swap runs.
type DoubleBuffer struct {
	bufs   [2][config.FrameBytes]byte
	render int
}

// New returns a zeroed double buffer with buffer 0 as the render buffer.
func New() *DoubleBuffer { return &DoubleBuffer{} }

// RenderIndex returns the index of the buffer currently owned by the
// renderer.
func (d *DoubleBuffer) RenderIndex() int { return d.render }

// RenderBuf returns the buffer currently owned by the renderer.
func (d *DoubleBuffer) RenderBuf() []byte { return d.bufs[d.render][:] }

// Buf returns buffer i for flushing. The caller must hold the flush side of
// the handshake for i.
func (d *DoubleBuffer) Buf(i int) []byte { return d.bufs[i&1][:] }

// Swap flips the render and flush designations.
func (d *DoubleBuffer) Swap() { d.render ^= 1 }
