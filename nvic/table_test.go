package nvic

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cortexm/scs"
)

// resetTable drops the active table so a test can observe the
// uninitialized state regardless of what ran before it.
func resetTable() {
	scs.Get().SetVectorTableAddress(0)
	vectorTable = nil
}

func TestVectorTable_Uninitialized(t *testing.T) {
	assert := assert.New(t)

	resetTable()
	assert.Empty(slices.Collect(VectorTable()))
}

func TestInitialize_PlaceholderFill(t *testing.T) {
	const size = 64
	assert := assert.New(t)

	resetTable()
	Initialize(size)

	table := slices.Collect(VectorTable())
	assert.Equal(size+CoreInterrupts, len(table))
	for slot, handler := range table {
		assert.True(sameHandler(handler, Nop), "slot %v", slot)
	}
}

func TestInitialize_Alignment(t *testing.T) {
	assert := assert.New(t)

	resetTable()
	Initialize(42)

	address := scs.Get().VectorTableAddress()
	assert.NotZero(address)
	assert.Zero(address % tableAlignment)
}

func TestInitialize_Idempotent(t *testing.T) {
	const size = 64
	assert := assert.New(t)

	Reinitialize(size)
	address := scs.Get().VectorTableAddress()

	handler := func() {}
	assert.NoError(New(5).Enable(handler))

	// A second call with the same count changes nothing.
	Initialize(size)
	assert.Equal(address, scs.Get().VectorTableAddress())
	assert.True(sameHandler(vectorTable[IRQ(5).VectorIndex()], handler))

	// Neither does one with a different count; the active table wins.
	Initialize(size * 2)
	assert.Equal(address, scs.Get().VectorTableAddress())
	assert.Equal(size+CoreInterrupts, len(vectorTable))
}

func TestReinitialize(t *testing.T) {
	const size = 64
	assert := assert.New(t)

	Reinitialize(size)
	assert.NoError(New(17).Enable(func() {}))

	regs := Get()
	assert.NotZero(regs.ISER[0])

	Reinitialize(size)

	// Simulated blocks are scrubbed outright; hardware would have
	// self-cleared through the all-ones ICER writes.
	assert.Zero(regs.ISER[0])
	assert.Zero(regs.ICER[0])

	assert.NotZero(scs.Get().VectorTableAddress())
	for slot, handler := range slices.Collect(VectorTable()) {
		assert.True(sameHandler(handler, Nop), "slot %v", slot)
	}
}

func TestGet_SingleInstance(t *testing.T) {
	assert := assert.New(t)

	assert.Same(Get(), Get())
}
