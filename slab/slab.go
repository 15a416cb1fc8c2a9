package slab

import "github.com/joshuapare/slabkit/backing"

// New validates the layout, builds a slab over the given backing allocator
// and returns its handle pair.
//
// Validation happens before any allocation side effect: an invalid layout
// returns ErrInvalidLayout with the backing allocator untouched. On
// success, New performs exactly one growth event to acquire the first
// chunk; if the backing allocator refuses it, New fails with
// ErrBackingExhausted and nothing leaks. A limit of zero skips the first
// chunk instead: the slab builds empty and every Alloc reports
// ErrLimitReached.
//
// Passing a nil backing allocator uses backing.Default().
func New(layout Layout, ba backing.Allocator, opts ...Option) (*Local, *Shared, error) {
	if err := layout.Validate(); err != nil {
		return nil, nil, err
	}
	if ba == nil {
		ba = backing.Default()
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Growth == nil {
		o.Growth = Pow2(defaultPow2Base)
	}

	s := &state{
		layout:  layout,
		stride:  layout.stride(),
		align:   layout.chunkAlign(),
		limit:   o.Limit,
		growth:  o.Growth,
		onGrow:  o.OnGrow,
		backing: ba,
	}
	local := &Local{s: s}

	if s.limit != 0 {
		if err := local.grow(); err != nil {
			return nil, nil, err
		}
	}

	s.refs.Store(2) // the Local handle plus the first Shared handle
	return local, &Shared{s: s}, nil
}
