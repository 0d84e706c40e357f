//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"obdash/dash/config"
	"obdash/dash/framebuf"
	"obdash/dash/input"
)

// WindowFlusher keeps a copy of the last flushed frame for the window to
// draw. Flush is called from the flusher goroutine, snapshot from the ebiten
// game loop.
type WindowFlusher struct {
	mu    sync.Mutex
	frame [config.FrameBytes]byte
}

func (f *WindowFlusher) Flush(buf []byte) error {
	f.mu.Lock()
	copy(f.frame[:], buf)
	f.mu.Unlock()
	return nil
}

func (f *WindowFlusher) snapshot(dst []byte) {
	f.mu.Lock()
	copy(dst, f.frame[:])
	f.mu.Unlock()
}

// KeyState mirrors the keyboard into button levels. The game loop writes the
// mask; the renderer goroutine reads it.
type KeyState struct {
	mask atomic.Uint32
}

const (
	keyBitA = 1 << iota
	keyBitB
	keyBitX
	keyBitY
)

func (k *KeyState) poll() {
	var m uint32
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		m |= keyBitA
	}
	if ebiten.IsKeyPressed(ebiten.KeyB) {
		m |= keyBitB
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		m |= keyBitX
	}
	if ebiten.IsKeyPressed(ebiten.KeyY) {
		m |= keyBitY
	}
	k.mask.Store(m)
}

// Levels returns the current key levels as button lines.
func (k *KeyState) Levels() input.Levels {
	m := k.mask.Load()
	return input.Levels{
		A: m&keyBitA != 0,
		B: m&keyBitB != 0,
		X: m&keyBitX != 0,
		Y: m&keyBitY != 0,
	}
}

// RunWindow opens the desktop window and runs the dashboard loop in a
// background goroutine until the window closes. The A/B/X/Y keys map to the
// hardware buttons.
func RunWindow(ctx context.Context, run func(context.Context) error, f *WindowFlusher, keys *KeyState, title string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- run(ctx) }()

	g := &hostGame{
		flusher: f,
		keys:    keys,
		img:     image.NewRGBA(image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight)),
		fbImg:   ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		scratch: make([]byte, config.FrameBytes),
		ctx:     ctx,
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(config.ScreenWidth*2, config.ScreenHeight*2)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	cancel()

	if rerr := <-errc; rerr != nil && !errors.Is(rerr, context.Canceled) && err == nil {
		err = rerr
	}
	return err
}

type hostGame struct {
	flusher *WindowFlusher
	keys    *KeyState
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	ctx     context.Context
}

func (g *hostGame) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	g.keys.poll()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.flusher.snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src); i += 2 {
		// Frames are stored big-endian for the display bus.
		r, gg, b := framebuf.Unpack565(uint16(src[i])<<8 | uint16(src[i+1]))
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
