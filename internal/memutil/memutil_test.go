package memutil

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-8, false},
		{-1, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{8, true},
		{12, false},
		{4096, true},
		{1 << 30, true},
		{(1 << 30) + 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPowerOfTwo(tt.n), "IsPowerOfTwo(%d)", tt.n)
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		n, align, want int
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{13, 1, 13},
		{4095, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundUp(tt.n, tt.align), "RoundUp(%d, %d)", tt.n, tt.align)
	}
}

func TestAlignOffset(t *testing.T) {
	buf := make([]byte, 256)
	for _, align := range []int{1, 2, 8, 64, 128} {
		p := unsafe.Pointer(&buf[0])
		off := AlignOffset(p, align)
		require.GreaterOrEqual(t, off, 0)
		require.Less(t, off, align)
		aligned := uintptr(p) + uintptr(off)
		assert.Zero(t, aligned%uintptr(align), "align %d", align)
	}
}
