//go:build !unix && !windows

package backing

// Fallback for platforms without a direct mapping primitive (js, wasip1):
// OS degrades to Heap-backed regions. The mapping registry stays empty and
// Deallocate leaves reclamation to the garbage collector.

func (o *OS) allocate(size, align int) ([]byte, error) {
	return Heap{}.Allocate(size, align)
}

func (o *OS) deallocate(region []byte) {}
