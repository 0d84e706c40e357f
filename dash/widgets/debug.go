package widgets

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"obdash/dash/config"
	"obdash/dash/profile"
)

// DebugStats is everything the Debug page shows, gathered once per frame by
// the pipeline.
type DebugStats struct {
	FPS     int
	AvgFPS  int
	PeakFPS int

	FrameUS  uint32
	RenderUS uint32
	FlushUS  uint32

	Swaps     uint32
	Waits     uint32
	RenderBuf int
	FlushBuf  int

	UtilPct        uint8
	CyclesPerFrame uint32
	CPUMHz         uint32

	// AnimMask is the per-cell bitmask of backgrounds that moved this
	// frame; PeakEvents counts peak-hold re-arms since boot.
	AnimMask   uint8
	PeakEvents uint32

	Mem profile.MemStats
}

// Attention thresholds; crossing one paints the value yellow.
const (
	utilAttention = 80
)

type debugRow struct {
	label string
	value string
	hot   bool
}

// DrawDebugPage renders the two-column system metrics grid.
func DrawDebugPage(d Display, s DebugStats) {
	left := []debugRow{
		{"FPS", fmt.Sprintf("%d", s.FPS), false},
		{"AVG FPS", fmt.Sprintf("%d", s.AvgFPS), false},
		{"MAX FPS", fmt.Sprintf("%d", s.PeakFPS), false},
		{"FRAME US", fmt.Sprintf("%d", s.FrameUS), false},
		{"RENDER US", fmt.Sprintf("%d", s.RenderUS), false},
		{"FLUSH US", fmt.Sprintf("%d", s.FlushUS), false},
		{"CPU %", fmt.Sprintf("%d", s.UtilPct), s.UtilPct > utilAttention},
		{"CYC/FRAME", fmt.Sprintf("%d", s.CyclesPerFrame), false},
		{"ANIM", fmt.Sprintf("%08b", s.AnimMask), false},
	}
	right := []debugRow{
		{"SWAPS", fmt.Sprintf("%d", s.Swaps), false},
		{"WAITS", fmt.Sprintf("%d", s.Waits), s.Waits > 0},
		{"RENDER BUF", fmt.Sprintf("%d", s.RenderBuf), false},
		{"FLUSH BUF", fmt.Sprintf("%d", s.FlushBuf), false},
		{"HEAP KB", fmt.Sprintf("%d/%d", s.Mem.HeapUsedKB, s.Mem.HeapTotalKB), false},
		{"STATIC KB", fmt.Sprintf("%d", s.Mem.StaticKB), false},
		{"RAM KB", fmt.Sprintf("%d", s.Mem.TotalKB), false},
		{"CPU MHZ", fmt.Sprintf("%d", s.CPUMHz), false},
		{"PEAKS", fmt.Sprintf("%d", s.PeakEvents), false},
	}
	drawDebugColumn(d, 10, left)
	drawDebugColumn(d, config.CenterX+10, right)
}

func drawDebugColumn(d Display, x int16, rows []debugRow) {
	y := int16(config.HeaderHeight + 18)
	for _, r := range rows {
		var vc color.RGBA = White
		if r.hot {
			vc = Yellow
		}
		tinyfont.WriteLine(d, fontSmall, x, y, r.label, Gray)
		writeRight(d, fontSmall, x+config.CenterX-24, y, r.value, vc)
		y += 16
	}
}
