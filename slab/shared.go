package slab

import "sync/atomic"

// Shared is the deallocate-only handle of a slab. It exposes no allocate
// operation: the capability asymmetry between the handle types is the
// enforcement. A Shared handle is safe for concurrent use by any number of
// goroutines, and Clone mints additional independently closeable
// references.
type Shared struct {
	s      *state
	closed atomic.Bool
}

// Free pushes a block onto the shared free list. Lock-free: a CAS retry
// loop that only ever pushes. The block becomes available to the Local
// handle at its next drain.
//
// buf must be the exact slice a previous Alloc on this slab returned, and
// must not be used afterwards.
func (h *Shared) Free(buf []byte) {
	h.s.shared.push(blockOf(buf))
	h.s.sharedFrees.Add(1)
}

// Clone returns a new Shared handle on the same slab. Each clone holds its
// own reference and must be closed independently.
func (h *Shared) Clone() *Shared {
	h.s.refs.Add(1)
	return &Shared{s: h.s}
}

// Close releases this handle's reference; the last handle to close tears
// the slab down, returning all chunks to the backing allocator. Close is
// idempotent; any other use of the handle after Close is undefined
// behavior.
func (h *Shared) Close() error {
	if h.closed.Swap(true) {
		return nil
	}
	h.s.release()
	return nil
}
