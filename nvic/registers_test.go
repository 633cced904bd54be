package nvic

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_Layout(t *testing.T) {
	assert := assert.New(t)

	var regs Registers

	// The reserved gaps must keep every group at its hardware offset.
	assert.Equal(uintptr(0x000), unsafe.Offsetof(regs.ISER))
	assert.Equal(uintptr(0x080), unsafe.Offsetof(regs.ICER))
	assert.Equal(uintptr(0x100), unsafe.Offsetof(regs.ISPR))
	assert.Equal(uintptr(0x180), unsafe.Offsetof(regs.ICPR))
	assert.Equal(uintptr(0x200), unsafe.Offsetof(regs.IABR))
	assert.Equal(uintptr(0x300), unsafe.Offsetof(regs.IP))
	assert.Equal(uintptr(0xE00), unsafe.Offsetof(regs.STIR))
	assert.Equal(uintptr(0xE04), unsafe.Sizeof(regs))
}
