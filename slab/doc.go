// Package slab implements a concurrent, lock-free allocator for uniformly
// sized memory blocks.
//
// # Overview
//
// A slab carves fixed-size blocks out of larger chunks acquired from a
// backing allocator (see the backing package). Access is split across two
// handle types:
//
//   - Local: the exclusive handle. Allocates and frees blocks, and is the
//     only component that grows the chunk pool. There is exactly one Local
//     per slab and it must not be used concurrently with itself.
//   - Shared: the deallocate-only handle. Freely shareable across any
//     number of goroutines; Free is lock-free. Clone produces additional
//     independently closeable references.
//
// Splitting the capability across two types makes the asymmetry a
// compile-time property: code holding only a Shared handle cannot allocate.
//
// # Usage
//
//	local, shared, err := slab.New(
//		slab.Layout{Size: 256, Align: 64},
//		backing.Heap{},
//		slab.WithLimit(1024),
//		slab.WithGrowth(slab.Pow2(32)),
//	)
//	if err != nil {
//		return err
//	}
//	defer local.Close()
//	defer shared.Close()
//
//	buf, err := local.Alloc()
//	if err != nil {
//		return err
//	}
//	// ... hand buf to another goroutine, which returns it with
//	// shared.Free(buf), or return it on the owner with local.Free(buf).
//
// # Free lists and the drain protocol
//
// Unused blocks live on one of two intrusive free lists, with the link
// stored in the first word of the free block itself:
//
//   - the local list, a plain LIFO stack touched only by Local;
//   - the shared list, a multi-producer stack pushed by Shared.Free with a
//     CAS retry loop.
//
// Alloc pops the local list first. When it is empty, Local drains the
// shared list: one atomic swap claims the entire chain and splices it into
// the local list. Producers only push and the sole consumer only takes the
// whole chain, so the ABA reuse hazard of a general lock-free stack pop
// does not arise. Only when both lists are empty does Local grow the pool,
// asking the growth policy how many blocks the next chunk should hold,
// clamped to the configured limit.
//
// # Lifecycle
//
// All handles reference one underlying slab state. Closing the Local handle
// while Shared handles remain leaves the slab draining: shared frees are
// still absorbed, and the blocks are reclaimed at final teardown. When the
// last handle closes, every chunk is returned to the backing allocator in
// one pass. Close is idempotent on every handle.
//
// # Contract
//
// Freeing a block that did not come from this slab, freeing the same block
// twice, using any handle after closing it, or calling Local methods
// concurrently is undefined behavior and is deliberately not runtime
// checked.
//
// # Errors
//
// Expected failures are sentinel errors: ErrInvalidLayout from New,
// ErrBackingExhausted when the backing allocator refuses a chunk, and
// ErrLimitReached when the capacity limit forbids further growth. The two
// growth failures are distinct so callers can tell "no room configured"
// from "OS refused".
package slab
