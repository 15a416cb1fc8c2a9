package backing

import "errors"

var (
	// ErrOutOfMemory indicates the allocator could not produce a region of
	// the requested size and alignment.
	ErrOutOfMemory = errors.New("backing: out of memory")

	// ErrDefaultInstalled indicates a process-wide default allocator has
	// already been installed (or resolved) and cannot be replaced.
	ErrDefaultInstalled = errors.New("backing: default allocator already installed")
)

// Allocator supplies raw memory spans. It is the only capability the slab
// allocator consumes from the outside world.
//
// Implementations must be safe to call from the single goroutine that
// drives a slab's growth; they are not required to support concurrent use
// unless documented otherwise (Heap, OS and Never all are).
type Allocator interface {
	// Allocate returns a region of exactly size bytes whose base address is
	// aligned to align. align must be a power of two. Failure is reported
	// as an error satisfying errors.Is(err, ErrOutOfMemory).
	Allocate(size, align int) ([]byte, error)

	// Deallocate releases a region previously returned by Allocate on this
	// allocator. The slice must be the exact value Allocate returned, and
	// align must match the original request.
	Deallocate(region []byte, align int)
}
