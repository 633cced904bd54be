package internal

import (
	"unsafe"
)

// AlignedSlice returns a slice of count elements whose backing array
// starts at a multiple of align bytes. align must be a power of two and
// a multiple of the element size. The padding needed to reach the
// alignment boundary stays reachable through the backing array, so the
// alignment holds for the lifetime of the returned slice.
func AlignedSlice[T any](count int, align uintptr) []T {
	size := unsafe.Sizeof(*new(T))
	buf := make([]T, count+int(align/size))

	skip := 0
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if rem := addr % align; rem != 0 {
		skip = int((align - rem) / size)
	}

	return buf[skip : skip+count : skip+count]
}

// SliceAddress returns the address of a slice's first element, or zero
// for an empty slice.
func SliceAddress[T any](s []T) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}
