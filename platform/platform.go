// Package platform reports whether the process runs on Cortex-M silicon
// or as a host-side simulation.
//
// The answer is resolved once, at the first query, and never changes
// afterwards. Register accessors throughout this module consult it to
// choose between the fixed hardware addresses and process-local
// substitute blocks.
package platform

import (
	"sync"
	"testing"
)

var forced bool

var resolve = sync.OnceValue(func() bool {
	return forced || testing.Testing()
})

// Simulated reports whether register accesses target process-local
// memory instead of the memory-mapped peripheral space. True under "go
// test" and after Simulate.
func Simulated() bool {
	return resolve()
}

// Simulate forces host-side simulation for this process. It must be
// called before the first register access; once the process has
// resolved to hardware the choice cannot be undone.
func Simulate() {
	forced = true
	if !resolve() {
		panic("platform: already resolved to hardware")
	}
}
