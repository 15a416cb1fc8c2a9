package backing

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/slabkit/internal/memutil"
)

// Heap serves regions from the Go heap. Alignment beyond what the runtime
// guarantees is met by over-allocating and returning an aligned sub-slice;
// the sub-slice keeps the whole allocation reachable, so a loaned region
// can never be collected out from under its owner.
//
// The zero value is ready to use and safe for concurrent use.
type Heap struct{}

// Allocate returns a size-byte region aligned to align.
func (Heap) Allocate(size, align int) ([]byte, error) {
	if size <= 0 || !memutil.IsPowerOfTwo(align) {
		return nil, fmt.Errorf("%w: bad request (size=%d, align=%d)", ErrOutOfMemory, size, align)
	}
	buf := make([]byte, size+align-1)
	off := memutil.AlignOffset(unsafe.Pointer(&buf[0]), align)
	return buf[off : off+size : off+size], nil
}

// Deallocate is a no-op; once the region's owner drops it, the garbage
// collector reclaims the underlying allocation.
func (Heap) Deallocate(region []byte, align int) {}
