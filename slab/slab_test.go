package slab

import (
	"sort"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slabkit/backing"
)

// TestNewInvalidLayoutTouchesNothing: layout validation must happen before
// any allocation side effect.
func TestNewInvalidLayoutTouchesNothing(t *testing.T) {
	rec := &backing.Recorder{Inner: backing.Heap{}}

	local, shared, err := New(Layout{Size: 0, Align: 8}, rec)
	require.ErrorIs(t, err, ErrInvalidLayout)
	assert.Nil(t, local)
	assert.Nil(t, shared)
	assert.Zero(t, rec.Stats().AllocateCalls, "invalid layout must not reach the backing allocator")
}

// TestNewFirstChunkFailure: a refused first chunk fails the build with
// ErrBackingExhausted.
func TestNewFirstChunkFailure(t *testing.T) {
	local, shared, err := New(testLayout, backing.Never{})
	require.ErrorIs(t, err, ErrBackingExhausted)
	assert.Nil(t, local)
	assert.Nil(t, shared)
}

// TestNewZeroLimitOverFailingBacking: a zero limit makes the build trivially
// succeed even over an always-failing backing; allocation then reports the
// limit, not the backing.
func TestNewZeroLimitOverFailingBacking(t *testing.T) {
	local, shared, err := New(testLayout, backing.Never{}, WithLimit(0))
	require.NoError(t, err)

	_, err = local.Alloc()
	require.ErrorIs(t, err, ErrLimitReached)

	require.NoError(t, local.Close())
	require.NoError(t, shared.Close())
}

// TestAllocFreeLIFO: a free immediately followed by an alloc on the Local
// handle returns the exact same address.
func TestAllocFreeLIFO(t *testing.T) {
	local, _, _ := newTestSlab(t, testLayout)

	a, err := local.Alloc()
	require.NoError(t, err)
	b, err := local.Alloc()
	require.NoError(t, err)

	local.Free(b)
	c, err := local.Alloc()
	require.NoError(t, err)
	assert.Same(t, &b[0], &c[0], "LIFO reuse must return the just-freed block")

	local.Free(a)
	d, err := local.Alloc()
	require.NoError(t, err)
	assert.Same(t, &a[0], &d[0])
}

// TestAllocDistinctBlocks: sequentially loaned blocks never overlap in
// address range.
func TestAllocDistinctBlocks(t *testing.T) {
	layout := Layout{Size: 48, Align: 16}
	local, _, _ := newTestSlab(t, layout, WithGrowth(Fixed(8)))

	const n = 50 // spans several chunks
	bufs := allocN(t, local, n)

	bases := make([]uintptr, n)
	for i, buf := range bufs {
		require.Len(t, buf, layout.Size)
		base := uintptr(unsafe.Pointer(&buf[0]))
		require.Zero(t, base%uintptr(layout.Align), "block %d misaligned", i)
		bases[i] = base
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })
	for i := 1; i < n; i++ {
		assert.GreaterOrEqual(t, bases[i], bases[i-1]+uintptr(layout.Size),
			"blocks %d and %d overlap", i-1, i)
	}
}

// TestSharedFreeBecomesAllocatable: a block freed through the Shared handle
// is handed out again once the local list empties.
func TestSharedFreeBecomesAllocatable(t *testing.T) {
	local, shared, _ := newTestSlab(t, testLayout, WithLimit(1), WithGrowth(Fixed(1)))

	buf, err := local.Alloc()
	require.NoError(t, err)
	shared.Free(buf)

	again, err := local.Alloc()
	require.NoError(t, err, "drained block must satisfy the alloc")
	assert.Same(t, &buf[0], &again[0])
}

// TestBlockMemoryUsable: loaned blocks are fully writable and freed blocks
// may be scribbled on by the allocator (the link word), so reuse makes no
// content promises.
func TestBlockMemoryUsable(t *testing.T) {
	local, _, _ := newTestSlab(t, Layout{Size: 32, Align: 8})

	buf, err := local.Alloc()
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xAB
	}
	local.Free(buf)

	again, err := local.Alloc()
	require.NoError(t, err)
	require.Same(t, &buf[0], &again[0])
	// Bytes past the link word survive the round-trip untouched.
	for _, b := range again[8:] {
		require.Equal(t, byte(0xAB), b)
	}
}

func TestStatsCounters(t *testing.T) {
	local, shared, _ := newTestSlab(t, testLayout, WithGrowth(Fixed(4)))

	bufs := allocN(t, local, 6) // first chunk from New, one grow at alloc 5
	local.Free(bufs[0])
	shared.Free(bufs[1])

	stats := local.Stats()
	assert.Equal(t, testLayout, stats.Layout)
	assert.Equal(t, -1, stats.Limit)
	assert.Equal(t, 2, stats.Chunks)
	assert.Equal(t, 8, stats.BlocksTotal)
	assert.Equal(t, uint64(6), stats.AllocCalls)
	assert.Equal(t, uint64(1), stats.FreeCalls)
	assert.Equal(t, uint64(1), stats.SharedFrees)
	assert.Equal(t, uint64(2), stats.GrowCalls)
	assert.Equal(t, 4, stats.Loaned)
	assert.Equal(t, 3, stats.FreeLocal,
		"one local free plus the two never-loaned blocks of the second chunk")
}

func TestDefaultBackingIsUsed(t *testing.T) {
	// nil backing resolves through backing.Default(); just exercise the
	// path end to end.
	local, shared, err := New(testLayout, nil, WithLimit(4), WithGrowth(Fixed(4)))
	require.NoError(t, err)
	defer local.Close()
	defer shared.Close()

	buf, err := local.Alloc()
	require.NoError(t, err)
	local.Free(buf)
}
