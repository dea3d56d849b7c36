package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCellAndGet(t *testing.T) {
	s := NewStore(40, 40)

	require.NoError(t, s.SetCell(3, 7, RGB{R: 255, G: 128, B: 0}))

	c, ok := s.Get(3, 7)
	require.True(t, ok)
	assert.Equal(t, RGB{R: 255, G: 128, B: 0}, c)

	_, ok = s.Get(3, 8)
	assert.False(t, ok)
}

func TestSetCellOutOfBounds(t *testing.T) {
	s := NewStore(40, 40)
	require.NoError(t, s.SetCell(0, 0, RGB{R: 1}))

	cases := []struct{ col, row int }{
		{40, 0}, {0, 40}, {40, 40}, {-1, 0}, {0, -1}, {1000, 1000},
	}
	for _, tc := range cases {
		err := s.SetCell(tc.col, tc.row, RGB{R: 9})
		require.ErrorIs(t, err, ErrOutOfBounds, "(%d,%d)", tc.col, tc.row)
	}

	// Rejected updates leave prior state untouched.
	assert.Equal(t, 1, s.Len())
	c, _ := s.Get(0, 0)
	assert.Equal(t, RGB{R: 1}, c)
}

func TestClear(t *testing.T) {
	s := NewStore(4, 4)
	require.NoError(t, s.SetCell(1, 1, RGB{G: 200}))
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestReplaceFrameRowMajor(t *testing.T) {
	s := NewStore(40, 40)
	pixels := make([]byte, 40*40*3)
	for i := range pixels {
		pixels[i] = byte(i % 251)
	}

	require.NoError(t, s.ReplaceFrame(40, 40, pixels))
	assert.Equal(t, 1600, s.Len())

	// Row-major: cell (col,row) starts at (row*40+col)*3.
	for _, tc := range []struct{ col, row int }{{0, 0}, {39, 0}, {0, 39}, {39, 39}, {5, 10}} {
		i := (tc.row*40 + tc.col) * 3
		want := RGB{R: pixels[i], G: pixels[i+1], B: pixels[i+2]}
		got, ok := s.Get(tc.col, tc.row)
		require.True(t, ok)
		assert.Equal(t, want, got, "(%d,%d)", tc.col, tc.row)
	}
}

func TestReplaceFrameReplacesNotMerges(t *testing.T) {
	s := NewStore(2, 2)
	require.NoError(t, s.SetCell(1, 1, RGB{B: 77}))

	pixels := make([]byte, 2*2*3)
	require.NoError(t, s.ReplaceFrame(2, 2, pixels))

	c, ok := s.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, RGB{}, c, "old color must not survive a snapshot")
}

func TestReplaceFrameDimensionMismatch(t *testing.T) {
	s := NewStore(40, 40)
	err := s.ReplaceFrame(20, 20, make([]byte, 20*20*3))
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, 0, s.Len())
}

func TestReplaceFrameSizeMismatch(t *testing.T) {
	s := NewStore(40, 40)
	require.NoError(t, s.SetCell(2, 2, RGB{R: 5}))

	err := s.ReplaceFrame(40, 40, make([]byte, 40*40*3-1))
	require.ErrorIs(t, err, ErrSizeMismatch)

	// Prior state untouched.
	assert.Equal(t, 1, s.Len())
	c, _ := s.Get(2, 2)
	assert.Equal(t, RGB{R: 5}, c)
}
