package nvic

import (
	"sync"
	"unsafe"

	"github.com/ezrec/cortexm/platform"
)

// baseAddress of the NVIC block on the private peripheral bus.
const baseAddress uintptr = 0xE000E100

// Registers mirrors the NVIC register block, reserved gaps included, so
// that a *Registers placed at baseAddress overlays the hardware
// registers byte for byte. Each enable/pending/active group is eight
// 32-bit words covering up to 256 interrupt lines; priorities are one
// byte per line.
type Registers struct {
	ISER [8]uint32   // 0x000 Interrupt Set Enable
	_    [24]uint32  // 0x020 reserved
	ICER [8]uint32   // 0x080 Interrupt Clear Enable
	_    [24]uint32  // 0x0A0 reserved
	ISPR [8]uint32   // 0x100 Interrupt Set Pending
	_    [24]uint32  // 0x120 reserved
	ICPR [8]uint32   // 0x180 Interrupt Clear Pending
	_    [24]uint32  // 0x1A0 reserved
	IABR [8]uint32   // 0x200 Interrupt Active Bit
	_    [56]uint32  // 0x220 reserved
	IP   [240]uint8  // 0x300 Interrupt Priority
	_    [644]uint32 // 0x3F0 reserved
	STIR uint32      // 0xE00 Software Trigger Interrupt
}

var simRegisters = sync.OnceValue(func() *Registers {
	return &Registers{}
})

// Get returns the NVIC register block. On hardware this overlays the
// memory-mapped controller; when simulated, all accesses land in a
// single lazily-created process-local block. The block is never copied;
// every operation goes through the pointer Get returns.
func Get() *Registers {
	if platform.Simulated() {
		return simRegisters()
	}
	return (*Registers)(unsafe.Pointer(baseAddress))
}
