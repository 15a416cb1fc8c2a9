package slab

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Local is the exclusive allocating handle of a slab. It is the only
// component that allocates blocks, grows the chunk pool, and drains the
// shared free list.
//
// A slab has exactly one Local handle. Its methods are single-owner: they
// must never be invoked concurrently with each other. That contract is
// structural, not locked, so violating it corrupts the free lists.
type Local struct {
	s    *state
	free localList

	// Single-owner counters; no atomics needed.
	allocCalls    uint64
	allocOK       uint64
	freeCalls     uint64
	drains        uint64
	drainedBlocks uint64
	growCalls     uint64

	closed atomic.Bool
}

// Alloc returns one block of the slab's layout, with len equal to
// Layout.Size. The block's contents are unspecified (previous occupants
// are not cleared).
//
// The fast paths are pointer manipulation only: the local free list first,
// then a drain of the shared list. Only when both are empty does Alloc call
// into the backing allocator to grow the pool, failing with ErrLimitReached
// when the limit forbids growth or ErrBackingExhausted when the backing
// allocator refuses.
func (l *Local) Alloc() ([]byte, error) {
	l.allocCalls++

	b := l.free.pop()
	if b == nil {
		l.drain()
		b = l.free.pop()
	}
	if b == nil {
		if err := l.grow(); err != nil {
			return nil, err
		}
		b = l.free.pop()
	}
	l.allocOK++
	return unsafe.Slice((*byte)(unsafe.Pointer(b)), l.s.layout.Size), nil
}

// Free returns a block to the local free list. buf must be the exact slice
// a previous Alloc on this slab returned, and must not be used afterwards.
// Freeing foreign memory or double-freeing is undefined behavior.
func (l *Local) Free(buf []byte) {
	l.freeCalls++
	l.free.push(blockOf(buf))
}

// drain claims the entire shared free chain with one atomic swap and
// splices it into the local list.
func (l *Local) drain() {
	n := l.free.merge(l.s.shared.takeAll())
	l.drains++
	l.drainedBlocks += uint64(n)
}

// grow acquires the next chunk from the backing allocator, sized by the
// growth policy and clamped to the remaining capacity, and pushes all of
// its blocks onto the local free list.
func (l *Local) grow() error {
	s := l.s

	want := s.growth(len(s.chunks), s.totalBlocks)
	if r := s.remaining(); r >= 0 && want > r {
		want = r
	}
	if want <= 0 {
		return fmt.Errorf("%w: %d blocks materialized", ErrLimitReached, s.totalBlocks)
	}
	if s.onGrow != nil {
		s.onGrow(want)
	}

	chunk, err := s.backing.Allocate(want*s.stride, s.align)
	if err != nil {
		return fmt.Errorf("%w: chunk of %d blocks: %v", ErrBackingExhausted, want, err)
	}
	s.chunks = append(s.chunks, chunk)
	s.totalBlocks += want
	l.growCalls++

	// Push in reverse so the lowest address surfaces first.
	for i := want - 1; i >= 0; i-- {
		l.free.push((*block)(unsafe.Pointer(&chunk[i*s.stride])))
	}
	return nil
}

// Stats returns a snapshot of the slab's counters as seen by the Local
// handle.
func (l *Local) Stats() Stats {
	s := l.s
	shared := s.sharedFrees.Load()
	return Stats{
		Layout:        s.layout,
		Limit:         s.limit,
		Chunks:        len(s.chunks),
		BlocksTotal:   s.totalBlocks,
		FreeLocal:     l.free.n,
		Loaned:        int(l.allocOK) - int(l.freeCalls) - int(shared),
		AllocCalls:    l.allocCalls,
		FreeCalls:     l.freeCalls,
		SharedFrees:   shared,
		Drains:        l.drains,
		DrainedBlocks: l.drainedBlocks,
		GrowCalls:     l.growCalls,
	}
}

// Close releases the Local handle. Shared handles remain usable: their
// frees keep being absorbed onto the shared list and are reclaimed at final
// teardown. When the last handle (Local or Shared) closes, every chunk is
// returned to the backing allocator. Close is idempotent; any other use of
// the handle after Close is undefined behavior.
func (l *Local) Close() error {
	if l.closed.Swap(true) {
		return nil
	}
	l.s.release()
	return nil
}
