package backing

import "sync"

// The process-wide default allocator. Resolved at most once for the process
// lifetime: either by an explicit Install before first use, or lazily to OS
// on the first Default call.
var std struct {
	once  sync.Once
	alloc Allocator
}

// Install makes a the process-wide default allocator returned by Default.
// It succeeds at most once per process; a second call, or a call after
// Default has already resolved the fallback, returns ErrDefaultInstalled.
func Install(a Allocator) error {
	if a == nil {
		panic("backing: Install(nil)")
	}
	installed := false
	std.once.Do(func() {
		std.alloc = a
		installed = true
	})
	if !installed {
		return ErrDefaultInstalled
	}
	return nil
}

// Default returns the process-wide default allocator, resolving it to a
// shared OS allocator if none was installed.
func Default() Allocator {
	std.once.Do(func() {
		std.alloc = new(OS)
	})
	return std.alloc
}
