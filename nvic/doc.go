// Package nvic manages the interrupt vector table and the Nested
// Vectored Interrupt Controller of Cortex-M3/M4/M7 processors.
//
// The package owns the single table of handler addresses the core
// dispatches through, and the per-line enable, pending, and priority
// state of the NVIC. Initialize relocates the table from the boot image
// into an alignment-correct buffer; Interrupt is the per-IRQ operation
// surface drivers use to install and remove their service routines.
//
// Nothing here is safe against the interrupt being modified: callers
// must keep a line (or all interrupts) suspended around any sequence
// that has to appear atomic to it. The package performs plain memory
// accesses and never blocks.
package nvic
