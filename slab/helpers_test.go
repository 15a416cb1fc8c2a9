package slab

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slabkit/backing"
)

// testLayout is a convenient valid layout for tests that don't care about
// the exact block shape.
var testLayout = Layout{Size: 64, Align: 8}

// newTestSlab builds a slab over a call-recording heap backing and wires
// Close into test cleanup.
func newTestSlab(t *testing.T, layout Layout, opts ...Option) (*Local, *Shared, *backing.Recorder) {
	t.Helper()

	rec := &backing.Recorder{Inner: backing.Heap{}}
	local, shared, err := New(layout, rec, opts...)
	require.NoError(t, err, "New should succeed")

	t.Cleanup(func() {
		_ = local.Close()
		_ = shared.Close()
	})
	return local, shared, rec
}

// allocN allocates n blocks, failing the test on error.
func allocN(t *testing.T, local *Local, n int) [][]byte {
	t.Helper()

	bufs := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		buf, err := local.Alloc()
		require.NoError(t, err, "alloc %d of %d", i+1, n)
		bufs = append(bufs, buf)
	}
	return bufs
}
