// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package systick drives the Cortex-M SysTick timer: a 24-bit
// countdown counter that raises the SysTick core exception on every
// reload.
package systick

import (
	"sync"
	"unsafe"

	"github.com/ezrec/cortexm/nvic"
	"github.com/ezrec/cortexm/platform"
)

// baseAddress of the SysTick block on the private peripheral bus.
const baseAddress uintptr = 0xE000E010

// Registers mirrors the SysTick register block.
type Registers struct {
	CSR   uint32 // 0x00 Control and Status
	RVR   uint32 // 0x04 Reload Value
	CVR   uint32 // 0x08 Current Value
	CALIB uint32 // 0x0C Calibration
}

// CSR fields.
const (
	csrEnable    = 1 << 0  // counter running
	csrTickInt   = 1 << 1  // raise SysTick exception on wrap
	csrClkSource = 1 << 2  // processor clock, not the external reference
	csrCountFlag = 1 << 16 // counter wrapped since last read
)

// reloadMask bounds the 24-bit counter fields.
const reloadMask = 0xFFFFFF

var simRegisters = sync.OnceValue(func() *Registers {
	return &Registers{}
})

// Get returns the SysTick register block, process-local when simulated.
func Get() *Registers {
	if platform.Simulated() {
		return simRegisters()
	}
	return (*Registers)(unsafe.Pointer(baseAddress))
}

// Start installs handler on the SysTick vector, programs the reload
// value (clamped to 24 bits), and starts the counter from the processor
// clock. The vector table must already be initialized.
func Start(reload uint32, handler nvic.Handler) error {
	if err := nvic.New(nvic.SysTick).Enable(handler); err != nil {
		return err
	}

	regs := Get()
	regs.RVR = reload & reloadMask
	regs.CVR = 0 // any write clears the counter and the count flag
	regs.CSR = csrEnable | csrTickInt | csrClkSource
	return nil
}

// Stop halts the counter and restores the placeholder handler on the
// SysTick vector.
func Stop() error {
	regs := Get()
	regs.CSR &^= csrEnable | csrTickInt

	return nvic.New(nvic.SysTick).Disable()
}

// Count returns the counter's current value.
func Count() uint32 {
	return Get().CVR & reloadMask
}

// TenMS returns the part's calibration value for a 10 ms tick, or zero
// when the part does not provide one.
func TenMS() uint32 {
	return Get().CALIB & reloadMask
}
