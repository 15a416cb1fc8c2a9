package backing

import "sync"

// Recorder wraps an Allocator and records every call made through it.
// It exists for tests and diagnostics: asserting that config validation
// never touches the backing allocator, or that teardown returns exactly
// the regions that were acquired.
//
// Safe for concurrent use.
type Recorder struct {
	// Inner is the allocator calls are forwarded to. Must be non-nil.
	Inner Allocator

	mu            sync.Mutex
	allocateSizes []int
	deallocates   int
	failed        int
}

// RecorderStats is a snapshot of the calls a Recorder has seen.
type RecorderStats struct {
	AllocateCalls   int   // total Allocate calls, including failed ones
	FailedAllocates int   // Allocate calls that returned an error
	DeallocateCalls int   // total Deallocate calls
	AllocateSizes   []int // requested size of each Allocate call, in order
}

// Allocate forwards to Inner, recording the request.
func (r *Recorder) Allocate(size, align int) ([]byte, error) {
	r.mu.Lock()
	r.allocateSizes = append(r.allocateSizes, size)
	r.mu.Unlock()

	region, err := r.Inner.Allocate(size, align)
	if err != nil {
		r.mu.Lock()
		r.failed++
		r.mu.Unlock()
	}
	return region, err
}

// Deallocate forwards to Inner, recording the call.
func (r *Recorder) Deallocate(region []byte, align int) {
	r.mu.Lock()
	r.deallocates++
	r.mu.Unlock()
	r.Inner.Deallocate(region, align)
}

// Stats returns a snapshot of the recorded calls.
func (r *Recorder) Stats() RecorderStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	sizes := make([]int, len(r.allocateSizes))
	copy(sizes, r.allocateSizes)
	return RecorderStats{
		AllocateCalls:   len(r.allocateSizes),
		FailedAllocates: r.failed,
		DeallocateCalls: r.deallocates,
		AllocateSizes:   sizes,
	}
}
