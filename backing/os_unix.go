//go:build unix

package backing

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/slabkit/internal/memutil"
)

func (o *OS) allocate(size, align int) ([]byte, error) {
	page := os.Getpagesize()
	mapLen := memutil.RoundUp(size, page)
	if align > page {
		// Over-map so an aligned base is guaranteed to exist inside the
		// span. x/sys tracks mappings by the exact slice, so the surplus
		// cannot be trimmed; it is released with the mapping.
		mapLen = memutil.RoundUp(size+align, page)
	}

	mapping, err := unix.Mmap(-1, 0, mapLen,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, mapLen, err)
	}

	off := memutil.AlignOffset(unsafe.Pointer(&mapping[0]), align)
	region := mapping[off : off+size : off+size]
	o.remember(region, mapping)
	return region, nil
}

func (o *OS) deallocate(region []byte) {
	mapping, ok := o.forget(region)
	if !ok {
		panic("backing: Deallocate of region not mapped by this OS allocator")
	}
	// Unmap errors are not actionable by the caller; the address range was
	// valid because we created it.
	_ = unix.Munmap(mapping)
}
