package slab

import "math"

// GrowthPolicy maps the current shape of the chunk pool to the size, in
// blocks, of the next chunk to acquire. chunks is how many chunks exist so
// far and totalBlocks how many blocks they hold together.
//
// Policies are pure sizing functions: the slab clamps the result to the
// remaining capacity under the configured limit, and a clamped result of
// zero or less fails the growth with ErrLimitReached.
type GrowthPolicy func(chunks, totalBlocks int) int

// Fixed returns a policy that sizes every chunk at n blocks.
func Fixed(n int) GrowthPolicy {
	return func(chunks, totalBlocks int) int {
		return n
	}
}

// Pow2 returns a doubling policy: base blocks for the first chunk, then
// 2*base, 4*base, and so on. This is the default policy.
func Pow2(base int) GrowthPolicy {
	return func(chunks, totalBlocks int) int {
		if base <= 0 {
			return base
		}
		n := base << uint(chunks)
		// Shift overflow saturates rather than wrapping negative.
		if n <= 0 || n>>uint(chunks) != base {
			return math.MaxInt
		}
		return n
	}
}

// Linear returns an arithmetic policy: base blocks for the first chunk,
// then base+step, base+2*step, and so on.
func Linear(base, step int) GrowthPolicy {
	return func(chunks, totalBlocks int) int {
		return base + chunks*step
	}
}
