package backing

// Never is an Allocator that refuses every request. Composing an allocator
// over Never is the standard way to test that backing failures propagate
// cleanly.
//
// The zero value is ready to use and safe for concurrent use.
type Never struct{}

// Allocate always fails with ErrOutOfMemory.
func (Never) Allocate(size, align int) ([]byte, error) {
	return nil, ErrOutOfMemory
}

// Deallocate panics: Never hands out no memory, so nothing can legitimately
// come back.
func (Never) Deallocate(region []byte, align int) {
	panic("backing: Deallocate on Never allocator")
}
