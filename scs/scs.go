// Package scs exposes the Cortex-M System Control Space: the block of
// core configuration registers that, among other things, holds the
// vector table offset register (VTOR) the processor dispatches through.
package scs

import (
	"sync"
	"unsafe"

	"github.com/ezrec/cortexm/platform"
)

// baseAddress of the System Control Block on the private peripheral bus.
const baseAddress uintptr = 0xE000ED00

// Registers mirrors the System Control Block, byte offset for byte
// offset, so that a *Registers placed at baseAddress overlays the
// hardware registers.
type Registers struct {
	CPUID uint32     // 0x00 CPUID Base
	ICSR  uint32     // 0x04 Interrupt Control and State
	VTOR  uint32     // 0x08 Vector Table Offset
	AIRCR uint32     // 0x0C Application Interrupt and Reset Control
	SCR   uint32     // 0x10 System Control
	CCR   uint32     // 0x14 Configuration and Control
	SHPR  [3]uint32  // 0x18 System Handler Priority 1-3
	SHCSR uint32     // 0x24 System Handler Control and State
	CFSR  uint32     // 0x28 Configurable Fault Status
	HFSR  uint32     // 0x2C HardFault Status
	DFSR  uint32     // 0x30 Debug Fault Status
	MMFAR uint32     // 0x34 MemManage Fault Address
	BFAR  uint32     // 0x38 BusFault Address
	AFSR  uint32     // 0x3C Auxiliary Fault Status
	_     [18]uint32 // 0x40 reserved
	CPACR uint32     // 0x88 Coprocessor Access Control
}

// AIRCR fields.
const (
	aircrVectKey     = 0x05FA << 16
	aircrSysResetReq = 1 << 2
)

var simRegisters = sync.OnceValue(func() *Registers {
	return &Registers{}
})

// Get returns the System Control Block: the memory-mapped block on
// hardware, or a single process-local block when simulated.
func Get() *Registers {
	if platform.Simulated() {
		return simRegisters()
	}
	return (*Registers)(unsafe.Pointer(baseAddress))
}

// VectorTableAddress returns the address the vector table has been
// relocated to. Zero means the processor still dispatches through the
// boot image table.
func (regs *Registers) VectorTableAddress() uintptr {
	return uintptr(regs.VTOR)
}

// SetVectorTableAddress relocates the vector table. The address must
// honor the VTOR alignment rules (512 bytes covers all table sizes this
// module produces); zero restores the boot image table.
func (regs *Registers) SetVectorTableAddress(address uintptr) {
	regs.VTOR = uint32(address)
}

// SystemHandlerPriority returns the configured priority of a system
// exception, identified by its vector number (4..15). Vectors below 4
// have fixed priorities and read as zero.
func (regs *Registers) SystemHandlerPriority(vector int) uint8 {
	if vector < 4 || vector > 15 {
		return 0
	}
	field := vector - 4
	return uint8(regs.SHPR[field/4] >> ((field % 4) * 8))
}

// SetSystemHandlerPriority sets the priority of a system exception by
// vector number (4..15). Writes to fixed-priority vectors are dropped.
func (regs *Registers) SetSystemHandlerPriority(vector int, priority uint8) {
	if vector < 4 || vector > 15 {
		return
	}
	field := vector - 4
	shift := (field % 4) * 8
	value := regs.SHPR[field/4]
	value &^= 0xFF << shift
	value |= uint32(priority) << shift
	regs.SHPR[field/4] = value
}

// Reset requests a system reset through AIRCR. On hardware the write
// does not return; when simulated it only records the request.
func (regs *Registers) Reset() {
	regs.AIRCR = aircrVectKey | aircrSysResetReq
}
