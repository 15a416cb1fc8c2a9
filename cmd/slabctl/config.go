package main

import (
	"fmt"

	"github.com/joshuapare/slabkit/backing"
	"github.com/joshuapare/slabkit/slab"
)

// slabFlags is the flag set shared by the bench and info commands.
type slabFlags struct {
	blockSize int
	align     int
	limit     int
	policy    string
	base      int
	step      int
	useOS     bool
}

// layout builds the slab layout from the flags.
func (f *slabFlags) layout() slab.Layout {
	return slab.Layout{Size: f.blockSize, Align: f.align}
}

// growth resolves the policy flags.
func (f *slabFlags) growth() (slab.GrowthPolicy, error) {
	switch f.policy {
	case "fixed":
		return slab.Fixed(f.base), nil
	case "pow2":
		return slab.Pow2(f.base), nil
	case "linear":
		return slab.Linear(f.base, f.step), nil
	default:
		return nil, fmt.Errorf("unknown growth policy %q (want fixed, pow2 or linear)", f.policy)
	}
}

// backingAllocator picks the backing per flags.
func (f *slabFlags) backingAllocator() backing.Allocator {
	if f.useOS {
		return new(backing.OS)
	}
	return backing.Heap{}
}
