package advanced

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshDrawPNG(t *testing.T) {
	mesh := mustTriangulate(t, randomPoints(10, 30, 10))
	path := filepath.Join(t.TempDir(), "mesh.png")

	require.NoError(t, mesh.DrawPNG(path, 20))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, mesh.DrawPNG(path, 0))
}
