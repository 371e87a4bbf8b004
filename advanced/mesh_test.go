package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// z = 2x - y + 1 over a 3x3 grid
func planarMesh(t *testing.T) *Mesh {
	return mustTriangulate(t, gridPoints(2, func(x, y float64) float64 {
		return 2*x - y + 1
	}))
}

func TestMeshLocate(t *testing.T) {
	mesh := planarMesh(t)

	tri := mesh.Locate(0.2, 0.1)
	require.NotNil(t, tri)
	assert.True(t, tri.IsInside(0.2, 0.1, 0))

	assert.Nil(t, mesh.Locate(-1, -1))
}

func TestMeshQuery_Planar(t *testing.T) {
	mesh := planarMesh(t)
	for _, xy := range [][2]float64{{0, 0}, {2, 2}, {1, 1}, {0.3, 1.7}, {1.5, 0}, {2, 0.25}} {
		z, ok := mesh.Query(xy[0], xy[1])
		if assert.True(t, ok, "%v", xy) {
			assert.InDelta(t, 2*xy[0]-xy[1]+1, z, 1e-12, "%v", xy)
		}
	}
}

func TestMeshGradient(t *testing.T) {
	mesh := planarMesh(t)

	dzdx, dzdy, ok := mesh.Gradient(0.5, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 2, dzdx, 1e-12)
	assert.InDelta(t, -1, dzdy, 1e-12)

	_, _, ok = mesh.Gradient(5, 5)
	assert.False(t, ok)
}

func TestMeshSlopeAspect(t *testing.T) {
	t.Run("inclined", func(t *testing.T) {
		mesh := planarMesh(t)
		slope, aspect, ok := mesh.SlopeAspect(1.2, 0.7)
		require.True(t, ok)
		assert.InDelta(t, math.Atan(math.Sqrt(5)), slope, 1e-12)
		// Uphill is toward +x and -y
		assert.InDelta(t, math.Atan2(2, -1), aspect, 1e-12)
	})

	t.Run("flat", func(t *testing.T) {
		mesh := mustTriangulate(t, gridPoints(1, func(x, y float64) float64 { return 4 }))
		slope, aspect, ok := mesh.SlopeAspect(0.5, 0.5)
		require.True(t, ok)
		assert.Equal(t, 0.0, slope)
		assert.Equal(t, 0.0, aspect)
	})

	t.Run("aspect wraps", func(t *testing.T) {
		// Uphill toward -x
		mesh := mustTriangulate(t, gridPoints(1, func(x, y float64) float64 { return -x }))
		_, aspect, ok := mesh.SlopeAspect(0.5, 0.5)
		require.True(t, ok)
		assert.InDelta(t, 3*math.Pi/2, aspect, 1e-12)
	})
}

func TestMeshGrid(t *testing.T) {
	mesh := planarMesh(t)

	grid, err := mesh.Grid(-1, 0, 2, 2, 1)
	require.NoError(t, err)
	require.Len(t, grid, 3)
	for i, row := range grid {
		require.Len(t, row, 4)
		y := float64(i)
		assert.True(t, math.IsNaN(row[0]), "x = -1 is outside")
		for j := 1; j < len(row); j++ {
			x := float64(j - 1)
			assert.InDelta(t, 2*x-y+1, row[j], 1e-12)
		}
	}

	t.Run("bad step", func(t *testing.T) {
		_, err := mesh.Grid(0, 0, 1, 1, 0)
		assert.Error(t, err)
		_, err = mesh.Grid(0, 0, 1, 1, math.NaN())
		assert.Error(t, err)
	})

	t.Run("inverted extent", func(t *testing.T) {
		_, err := mesh.Grid(1, 0, 0, 1, 0.5)
		assert.Error(t, err)
	})

	t.Run("too many cells", func(t *testing.T) {
		_, err := mesh.Grid(0, 0, 2, 2, 1e-4)
		assert.ErrorContains(t, err, "exceeds the limit")
	})

	t.Run("uses the mesh tolerance", func(t *testing.T) {
		// Just short of three steps across
		step := 1.0/3 + 1e-8

		grid, err := mesh.Grid(0, 0, 1, 0, step)
		require.NoError(t, err)
		require.Len(t, grid, 1)
		assert.Len(t, grid[0], 3)

		coarse := planarMesh(t)
		coarse.config.Tolerance = 1e-6
		grid, err = coarse.Grid(0, 0, 1, 0, step)
		require.NoError(t, err)
		require.Len(t, grid, 1)
		assert.Len(t, grid[0], 4)
	})
}

func TestMeshBoundsAndArea(t *testing.T) {
	mesh := planarMesh(t)
	assert.Equal(t, Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, mesh.Bounds())
	assert.InDelta(t, 4, mesh.Area(), 1e-12)
}
