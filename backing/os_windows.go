//go:build windows

package backing

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/slabkit/internal/memutil"
)

func (o *OS) allocate(size, align int) ([]byte, error) {
	page := os.Getpagesize()
	mapLen := memutil.RoundUp(size, page)
	if align > page {
		// VirtualAlloc bases are 64KB-granular; over-allocate so an aligned
		// base exists inside the reservation for any larger alignment.
		mapLen = memutil.RoundUp(size+align, page)
	}

	addr, err := windows.VirtualAlloc(0, uintptr(mapLen),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("%w: VirtualAlloc %d bytes: %v", ErrOutOfMemory, mapLen, err)
	}

	mapping := unsafe.Slice((*byte)(unsafe.Pointer(addr)), mapLen)
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
	_ = windows.VirtualFree(uintptr(unsafe.Pointer(&mapping[0])), 0, windows.MEM_RELEASE)
}
