package slab

import (
	"sync/atomic"
	"unsafe"
)

// block is the view of a free block's first word: the intrusive link to the
// next free block. The word is only meaningful while the block is on a free
// list; on loan, the caller owns all of the block's bytes.
type block struct {
	next *block
}

// blockOf reinterprets a caller-returned buffer as its free-list node.
// buf must be the exact slice a Local handle allocated.
func blockOf(buf []byte) *block {
	return (*block)(unsafe.Pointer(&buf[0]))
}

// localList is the single-owner free stack. Plain pointer operations; only
// the Local handle ever touches it.
type localList struct {
	head *block
	n    int
}

func (l *localList) push(b *block) {
	b.next = l.head
	l.head = b
	l.n++
}

func (l *localList) pop() *block {
	b := l.head
	if b == nil {
		return nil
	}
	l.head = b.next
	l.n--
	return b
}

// merge splices an entire drained chain in front of the list and returns
// the number of blocks it contained.
func (l *localList) merge(head *block) int {
	if head == nil {
		return 0
	}
	n := 1
	tail := head
	for tail.next != nil {
		tail = tail.next
		n++
	}
	tail.next = l.head
	l.head = head
	l.n += n
	return n
}

// sharedList is the multi-producer free stack. Producers only ever push;
// the single consumer claims the whole chain with one atomic swap. Because
// no one pops a single element, the ABA reuse hazard of a general
// concurrent stack does not arise, and the swap synchronizes-with every
// push it claims.
type sharedList struct {
	head atomic.Pointer[block]
}

func (s *sharedList) push(b *block) {
	for {
		old := s.head.Load()
		b.next = old
		if s.head.CompareAndSwap(old, b) {
			return
		}
	}
}

// takeAll claims the entire chain, leaving the list empty.
func (s *sharedList) takeAll() *block {
	return s.head.Swap(nil)
}
