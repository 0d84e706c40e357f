//go:build tinygo && baremetal

package hal

import (
	"machine"
	"runtime/volatile"
	"unsafe"
)

// Cortex-M DWT cycle counter registers.
var (
	demcr     = (*volatile.Register32)(unsafe.Pointer(uintptr(0xE000EDFC)))
	dwtCtrl   = (*volatile.Register32)(unsafe.Pointer(uintptr(0xE0001000)))
	dwtCycCnt = (*volatile.Register32)(unsafe.Pointer(uintptr(0xE0001004)))
)

// DWTCycles reads the free-running CPU cycle counter.
type DWTCycles struct{}

// NewDWTCycles enables the counter and returns it.
func NewDWTCycles() DWTCycles {
	demcr.SetBits(1 << 24) // TRCENA
	dwtCycCnt.Set(0)
	dwtCtrl.SetBits(1) // CYCCNTENA
	return DWTCycles{}
}

func (DWTCycles) Read() uint32 { return dwtCycCnt.Get() }

func (DWTCycles) FreqHz() uint32 { return machine.CPUFrequency() }
