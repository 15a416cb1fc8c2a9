package slab

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBlocks carves n fake blocks out of one buffer.
func testBlocks(n int) []*block {
	const stride = 64
	buf := make([]byte, n*stride)
	blocks := make([]*block, n)
	for i := range blocks {
		blocks[i] = (*block)(unsafe.Pointer(&buf[i*stride]))
	}
	return blocks
}

func TestLocalListPushPop(t *testing.T) {
	var l localList
	assert.Nil(t, l.pop(), "empty list pops nil")

	blocks := testBlocks(3)
	for _, b := range blocks {
		l.push(b)
	}
	assert.Equal(t, 3, l.n)

	// LIFO order.
	assert.Same(t, blocks[2], l.pop())
	assert.Same(t, blocks[1], l.pop())
	assert.Same(t, blocks[0], l.pop())
	assert.Nil(t, l.pop())
	assert.Zero(t, l.n)
}

func TestLocalListMerge(t *testing.T) {
	var l localList
	blocks := testBlocks(5)
	l.push(blocks[0])

	// Build a chain 1 -> 2 -> 3 as a drain would deliver it.
	blocks[1].next = blocks[2]
	blocks[2].next = blocks[3]
	blocks[3].next = nil

	assert.Equal(t, 3, l.merge(blocks[1]))
	assert.Equal(t, 4, l.n)

	// Chain sits in front of the previous head.
	assert.Same(t, blocks[1], l.pop())
	assert.Same(t, blocks[2], l.pop())
	assert.Same(t, blocks[3], l.pop())
	assert.Same(t, blocks[0], l.pop())

	assert.Zero(t, l.merge(nil), "merging an empty chain is a no-op")
}

func TestSharedListTakeAll(t *testing.T) {
	var s sharedList
	assert.Nil(t, s.takeAll(), "empty list drains nil")

	blocks := testBlocks(3)
	for _, b := range blocks {
		s.push(b)
	}

	head := s.takeAll()
	require.NotNil(t, head)
	assert.Nil(t, s.takeAll(), "drain must leave the list empty")

	var got []*block
	for b := head; b != nil; b = b.next {
		got = append(got, b)
	}
	require.Len(t, got, 3)
	for i, want := range []*block{blocks[2], blocks[1], blocks[0]} {
		assert.Same(t, want, got[i], "drain order position %d", i)
	}
}

// TestSharedListConcurrentPush hammers the multi-producer push from many
// goroutines and verifies a single drain observes every block exactly once.
func TestSharedListConcurrentPush(t *testing.T) {
	const producers = 16
	const perProducer = 500

	var s sharedList
	blocks := testBlocks(producers * perProducer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				s.push(blocks[p*perProducer+i])
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[*block]bool, len(blocks))
	for b := s.takeAll(); b != nil; b = b.next {
		require.False(t, seen[b], "block drained twice")
		seen[b] = true
	}
	assert.Len(t, seen, len(blocks), "every pushed block must drain exactly once")
}
