package nvic

import (
	"strconv"
)

// CoreInterrupts is the number of vector slots every Cortex-M3/M4/M7
// reserves ahead of the peripheral interrupts: the initial stack
// pointer plus the fifteen core exceptions.
const CoreInterrupts = 16

// IRQ is a logical interrupt request number. Negative numbers are the
// core exceptions, which hardware keeps permanently enabled and which
// never pass through the NVIC enable registers; numbers from zero up
// are peripheral lines that must be enabled explicitly.
type IRQ int

// Core exception numbers common to all Cortex-M3/M4/M7 parts.
const (
	Reset      IRQ = -15
	NMI        IRQ = -14
	HardFault  IRQ = -13
	MemManage  IRQ = -12
	BusFault   IRQ = -11
	UsageFault IRQ = -10
	SVCall     IRQ = -5
	DebugMon   IRQ = -4
	PendSV     IRQ = -2
	SysTick    IRQ = -1
)

const (
	// Bits 5 and up select which 32-bit ISER/ICER word holds the line's
	// enable bit.
	indexPosition = 5
	// The low 5 bits select the bit within that word.
	enableMaskCode = 0x1F
)

// RegisterIndex returns which 32-bit word of the enable/pending/active
// register groups controls this line. Only meaningful for peripheral
// interrupts; core exceptions have no NVIC enable bit.
func (irq IRQ) RegisterIndex() int {
	return int(irq) >> indexPosition
}

// EnableMask returns the single-bit mask for this line within its
// 32-bit register word.
func (irq IRQ) EnableMask() uint32 {
	return 1 << (uint32(irq) & enableMaskCode)
}

// VectorIndex returns the slot this interrupt occupies in the vector
// table. Non-negative for every valid IRQ.
func (irq IRQ) VectorIndex() int {
	return int(irq) + CoreInterrupts
}

// DefaultEnabled reports whether this is a core exception, which
// hardware delivers regardless of the NVIC enable registers.
func (irq IRQ) DefaultEnabled() bool {
	return irq < 0
}

// Valid reports whether the number falls inside the active vector
// table. The bound is read from the live table, so validity changes if
// the table is reinitialized with a different size; before Initialize
// nothing is valid.
func (irq IRQ) Valid() bool {
	last := IRQ(len(vectorTable) - CoreInterrupts)
	return irq > -CoreInterrupts && irq < last
}

var coreNames = map[IRQ]string{
	Reset:      "Reset",
	NMI:        "NMI",
	HardFault:  "HardFault",
	MemManage:  "MemManage",
	BusFault:   "BusFault",
	UsageFault: "UsageFault",
	SVCall:     "SVCall",
	DebugMon:   "DebugMon",
	PendSV:     "PendSV",
	SysTick:    "SysTick",
}

func (irq IRQ) String() string {
	if name, ok := coreNames[irq]; ok {
		return name
	}
	return "IRQ" + strconv.Itoa(int(irq))
}
