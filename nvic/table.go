package nvic

import (
	"iter"
	"reflect"
	"slices"

	"github.com/ezrec/cortexm/internal"
	"github.com/ezrec/cortexm/platform"
	"github.com/ezrec/cortexm/scs"
)

// Handler is an interrupt service routine. The vector table is an
// ordered sequence of these, indexed by vector position.
type Handler func()

// tableAlignment is the minimum alignment the vector table offset
// register requires of a relocated table.
const tableAlignment = 512

// vectorTable is the active table. Empty until Initialize publishes a
// buffer; lives for the rest of the process afterwards.
var vectorTable []Handler

// Nop is the placeholder handler that performs no work. Every slot
// holds it after Initialize, and Disable restores it.
func Nop() {}

// sameHandler compares handlers by code address; func values are not
// otherwise comparable. Distinct closures over one function body share
// a code address and compare equal.
func sameHandler(a, b Handler) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Initialize allocates an alignment-correct table of count peripheral
// slots plus the core exception slots, fills every slot with Nop,
// publishes it as the active table, and relocates the processor's
// vector table register to it.
//
// If a table is already active (the system control VTOR is non-zero)
// the call returns immediately, so it is safe to invoke from multiple
// independent startup paths. Later calls with a different count do not
// disturb the active table.
func Initialize(count int) {
	if scs.Get().VectorTableAddress() != 0 {
		return
	}

	table := internal.AlignedSlice[Handler](count+CoreInterrupts, tableAlignment)
	for slot := range table {
		table[slot] = Nop
	}

	vectorTable = table
	scs.Get().SetVectorTableAddress(internal.SliceAddress(table))
}

// Reinitialize disables every peripheral interrupt at the controller,
// drops the active table, and runs Initialize(count) again to publish a
// fresh one.
//
// Must not be called once drivers have installed handlers they expect
// to stay live; nothing here enforces that ordering.
func Reinitialize(count int) {
	regs := Get()

	// Writing all ones to a clear-enable word disables all 32 lines.
	for word := range regs.ICER {
		regs.ICER[word] = 0xFFFFFFFF
	}

	if platform.Simulated() {
		// The process-local block has no hardware semantics: the ICER
		// writes above would otherwise persist as plain data, and ISER
		// keeps whatever was enabled before.
		clear(regs.ISER[:])
		clear(regs.ICER[:])
	}

	scs.Get().SetVectorTableAddress(0)
	Initialize(count)
}

// VectorTable returns the active table as a read-only ordered sequence,
// core exception slots first. Empty before Initialize.
func VectorTable() iter.Seq[Handler] {
	return slices.Values(vectorTable)
}
