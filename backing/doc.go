// Package backing defines the raw-memory boundary underneath the slab
// allocator: an Allocator hands out contiguous byte regions of a requested
// size and alignment, and takes them back when their owner is done.
//
// Three implementations are provided:
//
//   - Never: refuses every request. Useful for exercising failure paths.
//   - Heap: serves regions from the Go heap. Works on every platform and is
//     the right choice for tests and tools.
//   - OS: maps regions directly from the operating system (mmap on Unix,
//     VirtualAlloc on Windows), bypassing the Go heap entirely.
//
// A process-wide default can be installed exactly once with Install and
// retrieved with Default; components that take an Allocator should accept
// one explicitly and fall back to Default only at the outermost layer.
//
// Regions returned by Allocate must be handed back to Deallocate as the
// exact slice value Allocate produced. Re-sliced or foreign regions are a
// contract violation.
package backing
