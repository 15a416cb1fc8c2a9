package slab

import (
	"fmt"

	"github.com/joshuapare/slabkit/internal/memutil"
)

// Layout describes the blocks a slab hands out.
type Layout struct {
	// Size is the usable size of every block, in bytes.
	Size int

	// Align is the alignment guaranteed for every block's base address.
	// Must be a power of two.
	Align int
}

// Validate checks the layout invariants: Size must be positive and at least
// one pointer word (a free block stores its free-list link in its first
// word), and Align must be a power of two.
func (l Layout) Validate() error {
	switch {
	case l.Size <= 0:
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidLayout, l.Size)
	case !memutil.IsPowerOfTwo(l.Align):
		return fmt.Errorf("%w: align %d must be a power of two", ErrInvalidLayout, l.Align)
	case l.Size < memutil.WordSize:
		return fmt.Errorf("%w: size %d cannot hold a %d-byte free-list link",
			ErrInvalidLayout, l.Size, memutil.WordSize)
	}
	return nil
}

// chunkAlign is the alignment chunks are requested at: the block alignment,
// raised to a pointer word so the inline free-list link is always stored at
// an aligned address.
func (l Layout) chunkAlign() int {
	if l.Align > memutil.WordSize {
		return l.Align
	}
	return memutil.WordSize
}

// stride is the spacing between consecutive block bases inside a chunk.
func (l Layout) stride() int {
	return memutil.RoundUp(l.Size, l.chunkAlign())
}

func (l Layout) String() string {
	return fmt.Sprintf("%dB/align %d", l.Size, l.Align)
}
