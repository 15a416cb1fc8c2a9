package backing

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/joshuapare/slabkit/internal/memutil"
)

// OS maps regions directly from the operating system, bypassing the Go
// heap: anonymous private mmap on Unix, VirtualAlloc on Windows, and a Heap
// fallback on platforms with neither.
//
// Requests are rounded up to whole pages. Alignments larger than a page are
// served by mapping an oversized span and handing out an aligned sub-slice;
// the allocator remembers the original mapping so Deallocate can release it
// exactly.
//
// The zero value is ready to use and safe for concurrent use.
type OS struct {
	mu       sync.Mutex
	mappings map[uintptr][]byte // region base address -> original mapping
}

// Allocate returns a page-backed region of exactly size bytes aligned to
// align.
func (o *OS) Allocate(size, align int) ([]byte, error) {
	if size <= 0 || !memutil.IsPowerOfTwo(align) {
		return nil, fmt.Errorf("%w: bad request (size=%d, align=%d)", ErrOutOfMemory, size, align)
	}
	return o.allocate(size, align)
}

// Deallocate releases a region returned by Allocate. Passing a region this
// allocator did not produce panics.
func (o *OS) Deallocate(region []byte, align int) {
	if len(region) == 0 {
		return
	}
	o.deallocate(region)
}

func (o *OS) remember(region, mapping []byte) {
	base := uintptr(unsafe.Pointer(&region[0]))
	o.mu.Lock()
	if o.mappings == nil {
		o.mappings = make(map[uintptr][]byte)
	}
	o.mappings[base] = mapping
	o.mu.Unlock()
}

func (o *OS) forget(region []byte) ([]byte, bool) {
	base := uintptr(unsafe.Pointer(&region[0]))
	o.mu.Lock()
	mapping, ok := o.mappings[base]
	delete(o.mappings, base)
	o.mu.Unlock()
	return mapping, ok
}
