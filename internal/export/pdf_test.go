package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armedev/game-of-life/internal/grid"
)

func TestPDFWritesFile(t *testing.T) {
	s := grid.NewStore(40, 40)
	require.NoError(t, s.SetCell(0, 0, grid.RGB{R: 255}))
	require.NoError(t, s.SetCell(39, 39, grid.RGB{B: 255}))

	path := filepath.Join(t.TempDir(), "grid.pdf")
	require.NoError(t, PDF(path, s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFEmptyGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, PDF(path, grid.NewStore(10, 10)))
}
