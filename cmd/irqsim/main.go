// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// irqsim runs a starlark script of interrupt operations against a
// simulated Cortex-M interrupt controller. Useful for prototyping a
// device's vector table setup on the host before flashing anything.
//
// Builtins available to the script:
//
//	enable(irq)         install a handler and enable the line
//	disable(irq)        restore the placeholder and disable the line
//	trigger(irq)        mark a peripheral line pending
//	clear(irq)          retract a pending line
//	pending(irq)        report whether the line is pending
//	verify(irq)         report the installed-handler check for the line
//	priority(irq, pri)  set the line's priority byte
//	fire(irq)           invoke the handler in the line's vector slot
//	reset(lines)        reinitialize the table for a new line count
package main

import (
	"flag"
	"log"
	"os"
	"reflect"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cortexm/nvic"
	"github.com/ezrec/cortexm/platform"
)

// handlers holds the closure installed for each line, so that verify()
// and fire() observe the same function enable() installed.
var handlers = map[int]nvic.Handler{}

func handlerFor(irq int) nvic.Handler {
	handler, ok := handlers[irq]
	if !ok {
		handler = func() { log.Printf("%v fired", nvic.IRQ(irq)) }
		handlers[irq] = handler
	}
	return handler
}

// irqBuiltin wraps a one-argument interrupt operation as a starlark
// builtin returning None.
func irqBuiltin(name string, op func(irq int) error) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var irq int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &irq); err != nil {
			return nil, err
		}
		return starlark.None, op(irq)
	})
}

// irqQueryBuiltin wraps a one-argument interrupt query as a starlark
// builtin returning a Bool.
func irqQueryBuiltin(name string, op func(irq int) (bool, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var irq int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &irq); err != nil {
			return nil, err
		}
		ok, err := op(irq)
		return starlark.Bool(ok), err
	})
}

func builtins() starlark.StringDict {
	priority := starlark.NewBuiltin("priority", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var irq, pri int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &irq, &pri); err != nil {
			return nil, err
		}
		return starlark.None, nvic.New(nvic.IRQ(irq)).SetPriority(uint8(pri))
	})

	reset := starlark.NewBuiltin("reset", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var lines int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &lines); err != nil {
			return nil, err
		}
		nvic.Reinitialize(lines)
		return starlark.None, nil
	})

	return starlark.StringDict{
		"enable": irqBuiltin("enable", func(irq int) error {
			return nvic.New(nvic.IRQ(irq)).Enable(handlerFor(irq))
		}),
		"disable": irqBuiltin("disable", func(irq int) error {
			return nvic.New(nvic.IRQ(irq)).Disable()
		}),
		"trigger": irqBuiltin("trigger", func(irq int) error {
			return nvic.New(nvic.IRQ(irq)).Trigger()
		}),
		"clear": irqBuiltin("clear", func(irq int) error {
			return nvic.New(nvic.IRQ(irq)).ClearPending()
		}),
		"pending": irqQueryBuiltin("pending", func(irq int) (bool, error) {
			return nvic.New(nvic.IRQ(irq)).Pending()
		}),
		"verify": irqQueryBuiltin("verify", func(irq int) (bool, error) {
			return nvic.New(nvic.IRQ(irq)).VerifyVectorEnabled(handlerFor(irq))
		}),
		"fire":     irqBuiltin("fire", fire),
		"priority": priority,
		"reset":    reset,
	}
}

// fire dispatches through the vector table the way the core would.
func fire(irq int) error {
	table := slices.Collect(nvic.VectorTable())
	slot := nvic.IRQ(irq).VectorIndex()
	if slot < 0 || slot >= len(table) {
		return nvic.ErrInvalidIRQ{
			Invalid: nvic.IRQ(irq),
			End:     nvic.IRQ(len(table) - nvic.CoreInterrupts),
		}
	}
	table[slot]()
	return nil
}

// dumpTable logs every vector slot holding something other than the
// placeholder.
func dumpTable() {
	nop := reflect.ValueOf(nvic.Handler(nvic.Nop)).Pointer()
	slot := 0
	for handler := range nvic.VectorTable() {
		if reflect.ValueOf(handler).Pointer() != nop {
			log.Printf("vector %3d: %v installed", slot, nvic.IRQ(slot-nvic.CoreInterrupts))
		}
		slot++
	}
}

func main() {
	var lines int
	var verbose bool

	flag.IntVar(&lines, "n", 64, "Number of peripheral interrupt lines")
	flag.BoolVar(&verbose, "v", false, "Dump installed vectors after the script")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected exactly one script, got %v", os.Args[0], flag.Args())
	}
	script := flag.Arg(0)

	platform.Simulate()
	nvic.Initialize(lines)

	thread := starlark.Thread{Name: "irqsim"}
	opts := syntax.FileOptions{}

	_, err := starlark.ExecFileOptions(&opts, &thread, script, nil, builtins())
	if err != nil {
		log.Fatalf("%v: %v", script, err)
	}

	if verbose {
		dumpTable()
	}
}
