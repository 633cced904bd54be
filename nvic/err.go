package nvic

import (
	"errors"

	"github.com/ezrec/cortexm/translate"
)

var f = translate.From

var (
	// ErrNotInitialized reports a per-IRQ operation attempted before
	// Initialize published a vector table. Almost always a startup
	// sequencing bug in the caller.
	ErrNotInitialized = errors.New(f("vector table not initialized"))
)

// ErrInvalidIRQ reports an interrupt number outside the active vector
// table: a wrong IRQ constant for the target device, not a transient
// condition.
type ErrInvalidIRQ struct {
	Invalid IRQ // the offending number
	End     IRQ // one past the last peripheral line in the table
}

func (err ErrInvalidIRQ) Error() string {
	return f("irq %v outside of table range %v..%v", int(err.Invalid), 1-CoreInterrupts, int(err.End)-1)
}

func (err ErrInvalidIRQ) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidIRQ)
	return
}
