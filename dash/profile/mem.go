package profile

import (
	"runtime"

	"obdash/dash/config"
)

// MemStats is the memory snapshot shown on the Debug page, in KiB.
type MemStats struct {
	HeapUsedKB  uint32
	HeapTotalKB uint32
	StaticKB    uint32
	TotalKB     uint32
}

// ReadMem samples the runtime allocator. StaticKB counts the fixed frame
// buffers, which dominate the static footprint.
func ReadMem() MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemStats{
		HeapUsedKB:  uint32(m.HeapInuse / 1024),
		HeapTotalKB: uint32(m.HeapSys / 1024),
		StaticKB:    uint32(2 * config.FrameBytes / 1024),
		TotalKB:     uint32(m.Sys / 1024),
	}
}
