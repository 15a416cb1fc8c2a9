package slab

import "errors"

var (
	// ErrInvalidLayout indicates a block layout that violates the layout
	// invariants: non-positive size, alignment not a power of two, or a
	// size too small to hold the free-list link. Returned by New before any
	// backing allocation is attempted.
	ErrInvalidLayout = errors.New("slab: invalid block layout")

	// ErrBackingExhausted indicates the backing allocator refused a chunk
	// request.
	ErrBackingExhausted = errors.New("slab: backing allocator exhausted")

	// ErrLimitReached indicates both free lists are empty and the
	// configured block limit forbids acquiring another chunk.
	ErrLimitReached = errors.New("slab: block limit reached")
)
