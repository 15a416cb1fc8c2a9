package slab

// defaultPow2Base is the first-chunk size, in blocks, of the default
// growth policy.
const defaultPow2Base = 64

// Options configures a slab beyond its block layout.
type Options struct {
	// Limit caps the total number of blocks ever materialized across all
	// chunks. Zero is a valid cap (the slab is built empty and every Alloc
	// fails with ErrLimitReached); negative means unbounded.
	// Default: unbounded.
	Limit int

	// Growth sizes each successive chunk.
	// Default: Pow2(64).
	Growth GrowthPolicy

	// OnGrow, when non-nil, is called with the clamped block count just
	// before each chunk acquisition. Test instrumentation hook.
	OnGrow func(blocks int)
}

// DefaultOptions returns the options New starts from: unbounded capacity
// with the default doubling growth policy.
func DefaultOptions() *Options {
	return &Options{
		Limit:  -1,
		Growth: Pow2(defaultPow2Base),
	}
}

// Option mutates Options during New.
type Option func(*Options)

// WithLimit caps the total number of blocks the slab may ever materialize.
func WithLimit(blocks int) Option {
	return func(o *Options) { o.Limit = blocks }
}

// WithGrowth sets the growth policy sizing each successive chunk.
func WithGrowth(p GrowthPolicy) Option {
	return func(o *Options) { o.Growth = p }
}

// WithGrowHook installs a hook called with the clamped block count before
// each chunk acquisition.
func WithGrowHook(fn func(blocks int)) Option {
	return func(o *Options) { o.OnGrow = fn }
}
