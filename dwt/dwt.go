// Package dwt exposes the Data Watchpoint and Trace unit's cycle
// counter, a free-running count of processor cycles useful for
// busy-wait timing and profiling.
package dwt

import (
	"sync"
	"unsafe"

	"github.com/ezrec/cortexm/platform"
)

// Base addresses of the DWT block and of the Core Debug block that
// gates it.
const (
	baseAddress      uintptr = 0xE0001000
	debugBaseAddress uintptr = 0xE000EDF0
)

// Registers mirrors the head of the DWT register block.
type Registers struct {
	CTRL     uint32 // 0x00 Control
	CYCCNT   uint32 // 0x04 Cycle Count
	CPICNT   uint32 // 0x08 CPI Count
	EXCCNT   uint32 // 0x0C Exception Overhead Count
	SLEEPCNT uint32 // 0x10 Sleep Count
	LSUCNT   uint32 // 0x14 LSU Count
	FOLDCNT  uint32 // 0x18 Folded-instruction Count
	PCSR     uint32 // 0x1C Program Counter Sample
}

// DebugRegisters mirrors the Core Debug block.
type DebugRegisters struct {
	DHCSR uint32 // 0x00 Halting Control and Status
	DCRSR uint32 // 0x04 Core Register Selector
	DCRDR uint32 // 0x08 Core Register Data
	DEMCR uint32 // 0x0C Exception and Monitor Control
}

const (
	ctrlCycCntEna = 1 << 0  // CTRL: cycle counter running
	demcrTrcEna   = 1 << 24 // DEMCR: DWT and ITM powered
)

var simRegisters = sync.OnceValue(func() *Registers {
	return &Registers{}
})

var simDebugRegisters = sync.OnceValue(func() *DebugRegisters {
	return &DebugRegisters{}
})

// Get returns the DWT register block, process-local when simulated.
func Get() *Registers {
	if platform.Simulated() {
		return simRegisters()
	}
	return (*Registers)(unsafe.Pointer(baseAddress))
}

// GetDebug returns the Core Debug register block, process-local when
// simulated.
func GetDebug() *DebugRegisters {
	if platform.Simulated() {
		return simDebugRegisters()
	}
	return (*DebugRegisters)(unsafe.Pointer(debugBaseAddress))
}

// Start powers the trace unit, zeroes the cycle counter, and starts it.
func Start() {
	GetDebug().DEMCR |= demcrTrcEna

	regs := Get()
	regs.CYCCNT = 0
	regs.CTRL |= ctrlCycCntEna
}

// Stop halts the cycle counter; the count stays readable.
func Stop() {
	Get().CTRL &^= ctrlCycCntEna
}

// Cycles returns the current cycle count.
func Cycles() uint32 {
	return Get().CYCCNT
}
