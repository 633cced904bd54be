package systick

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cortexm/nvic"
	"github.com/ezrec/cortexm/scs"
)

func TestStart(t *testing.T) {
	assert := assert.New(t)

	nvic.Reinitialize(64)

	handler := func() {}
	assert.NoError(Start(1000, handler))

	regs := Get()
	assert.Equal(uint32(1000), regs.RVR)
	assert.Equal(uint32(csrEnable|csrTickInt|csrClkSource), regs.CSR)

	// SysTick is a core exception, so the vector slot alone decides.
	ok, err := nvic.New(nvic.SysTick).VerifyVectorEnabled(handler)
	assert.NoError(err)
	assert.True(ok)
}

func TestStart_ReloadClamped(t *testing.T) {
	assert := assert.New(t)

	nvic.Reinitialize(64)
	assert.NoError(Start(0x1FF_FFFF, func() {}))
	assert.Equal(uint32(0xFF_FFFF), Get().RVR)
}

func TestStart_Uninitialized(t *testing.T) {
	assert := assert.New(t)

	csrBefore := Get().CSR

	// Clearing the relocation state makes every vector operation fail.
	scs.Get().SetVectorTableAddress(0)
	assert.ErrorIs(Start(1000, func() {}), nvic.ErrNotInitialized)
	assert.Equal(csrBefore, Get().CSR)
}

func TestStop(t *testing.T) {
	assert := assert.New(t)

	nvic.Reinitialize(64)
	assert.NoError(Start(1000, func() {}))
	assert.NoError(Stop())

	regs := Get()
	assert.Zero(regs.CSR & (csrEnable | csrTickInt))

	ok, err := nvic.New(nvic.SysTick).VerifyVectorEnabled(nvic.Nop)
	assert.NoError(err)
	assert.True(ok)
}

func TestCount(t *testing.T) {
	assert := assert.New(t)

	Get().CVR = 123
	assert.Equal(uint32(123), Count())
}
