package slab

import (
	"sync/atomic"

	"github.com/joshuapare/slabkit/backing"
)

// state is the slab storage shared by the Local handle and every Shared
// handle. It owns the chunk pool for the slab's whole lifetime and is torn
// down when the last handle releases its reference.
type state struct {
	layout  Layout
	stride  int
	align   int // chunk alignment, derived from layout
	limit   int // negative = unbounded
	growth  GrowthPolicy
	onGrow  func(int)
	backing backing.Allocator

	shared sharedList

	// Chunk pool. Written only by the Local handle during growth; Shared
	// handles never read it. The teardown reader is ordered after the last
	// writer by the refs decrement.
	chunks      [][]byte
	totalBlocks int

	refs        atomic.Int32
	sharedFrees atomic.Uint64
}

// release drops one handle reference. The caller dropping the last
// reference returns every chunk to the backing allocator in one pass.
func (s *state) release() {
	if s.refs.Add(-1) != 0 {
		return
	}
	for _, chunk := range s.chunks {
		s.backing.Deallocate(chunk, s.align)
	}
	s.chunks = nil
}

// remaining is how many more blocks may be materialized under the limit.
// Negative means unbounded.
func (s *state) remaining() int {
	if s.limit < 0 {
		return -1
	}
	return s.limit - s.totalBlocks
}
