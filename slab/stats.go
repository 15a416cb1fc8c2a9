package slab

// Stats is a point-in-time snapshot of a slab's counters, taken via
// Local.Stats. Counters owned by the Local handle (alloc/free/drain/grow)
// are exact; SharedFrees is an atomic snapshot and may trail concurrent
// Shared.Free calls by the time the caller looks at it.
type Stats struct {
	Layout Layout
	Limit  int // negative = unbounded

	Chunks      int // chunks acquired so far
	BlocksTotal int // blocks materialized across all chunks
	FreeLocal   int // blocks currently on the local free list
	Loaned      int // blocks currently on loan to callers

	AllocCalls    uint64
	FreeCalls     uint64 // frees through the Local handle
	SharedFrees   uint64 // frees through Shared handles
	Drains        uint64 // shared-list swaps, including empty ones
	DrainedBlocks uint64 // blocks recovered by drains
	GrowCalls     uint64 // successful chunk acquisitions
}
