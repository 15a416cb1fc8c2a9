// Package memutil provides the alignment and pointer arithmetic helpers
// shared by the backing and slab packages.
package memutil

import (
	"math/bits"
	"unsafe"
)

// WordSize is the size in bytes of a pointer-width field on this platform.
const WordSize = int(unsafe.Sizeof(uintptr(0)))

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// RoundUp rounds n up to the next multiple of align.
// align must be a positive power of two.
func RoundUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// AlignOffset returns how many bytes past p the next align-aligned address
// lies. Zero when p is already aligned. align must be a positive power of
// two.
func AlignOffset(p unsafe.Pointer, align int) int {
	return int((-uintptr(p)) & uintptr(align-1))
}
