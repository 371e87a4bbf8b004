package advanced

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// Shared helpers for the tests in this package

func makePoints(coords ...[3]float64) PointList {
	points := make(PointList, len(coords))
	for i, c := range coords {
		points[i] = &Point{X: c[0], Y: c[1], Z: c[2], Index: i}
	}
	return points
}

// Like Triangulate, but returns panics as errors the way the public API does.
func tryTriangulate(points PointList, config Config) (mesh *Mesh, err error) {
	defer func() {
		recoveredErr := HandleBuildPanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()
	return points.Triangulate(config), nil
}

func mustTriangulate(t *testing.T, points PointList) *Mesh {
	t.Helper()
	mesh, err := tryTriangulate(points, DefaultConfig())
	require.NoError(t, err, "input: %s", spew.Sdump(points))
	return mesh
}

// A square grid of side n+1 with z = f(x, y)
func gridPoints(n int, f func(x, y float64) float64) PointList {
	var coords [][3]float64
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			x, y := float64(i), float64(j)
			coords = append(coords, [3]float64{x, y, f(x, y)})
		}
	}
	return makePoints(coords...)
}

func randomPoints(seed int64, n int, size float64) PointList {
	rng := rand.New(rand.NewSource(seed))
	coords := make([][3]float64, n)
	for i := range coords {
		coords[i] = [3]float64{rng.Float64() * size, rng.Float64() * size, rng.Float64() * 10}
	}
	return makePoints(coords...)
}

func containingCount(mesh *Mesh, x, y, eps float64) int {
	count := 0
	for _, tri := range mesh.Triangles {
		if tri.IsInside(x, y, eps) {
			count++
		}
	}
	return count
}
