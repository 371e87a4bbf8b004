package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// A finished triangulation. Meshes are never modified after Triangulate
// returns them, so any number of goroutines may query one concurrently.
type Mesh struct {
	// Input points in canonical order
	Points    PointList
	Triangles TriangleList

	config Config
	bounds Bounds
}

// Find the first triangle containing (x, y), or nil if the point is outside
// the convex hull. Points on an edge or vertex shared by several triangles
// may be reported in any of them.
func (m *Mesh) Locate(x, y float64) *Triangle {
	for _, t := range m.Triangles {
		if t.IsInside(x, y, m.config.Epsilon) {
			return t
		}
	}
	return nil
}

// Interpolated elevation at (x, y). The second result is false when no
// triangle contains the point.
func (m *Mesh) Query(x, y float64) (float64, bool) {
	t := m.Locate(x, y)
	if t == nil {
		return 0, false
	}
	return t.Interpolate(x, y), true
}

// Each triangle's vertices as the caller's external indices
func (m *Mesh) TriangleIndices() [][3]int {
	result := make([][3]int, len(m.Triangles))
	for i, t := range m.Triangles {
		result[i] = [3]int{t.P1.Index, t.P2.Index, t.P3.Index}
	}
	return result
}

// Bounding box of the input points
func (m *Mesh) Bounds() Bounds {
	return m.bounds
}

// Total projected area of the mesh. For a complete triangulation this equals
// the area of the convex hull of the input.
func (m *Mesh) Area() float64 {
	var area float64
	for _, t := range m.Triangles {
		area += t.Area()
	}
	return area
}

// Slope of the surface at (x, y) as partial derivatives. Inside a triangle
// this is exact, since the surface is planar there.
func (m *Mesh) Gradient(x, y float64) (dzdx, dzdy float64, ok bool) {
	t := m.Locate(x, y)
	if t == nil {
		return 0, 0, false
	}
	dzdx, dzdy = t.Plane.Gradient()
	return dzdx, dzdy, true
}

// Slope in radians from horizontal, and aspect as the direction of steepest
// ascent in radians clockwise from +y. Flat ground has an aspect of 0.
func (m *Mesh) SlopeAspect(x, y float64) (slope, aspect float64, ok bool) {
	dzdx, dzdy, ok := m.Gradient(x, y)
	if !ok {
		return 0, 0, false
	}
	slope = math.Atan(math.Hypot(dzdx, dzdy))
	if dzdx == 0 && dzdy == 0 {
		return slope, 0, true
	}
	aspect = math.Atan2(dzdx, dzdy)
	if aspect < 0 {
		aspect += 2 * math.Pi
	}
	return slope, aspect, true
}

// Largest grid Grid will allocate
const MaxGridCells = 1 << 24

// Sample the surface on a regular grid, row by row from minY upwards. Cells
// outside the mesh are NaN.
func (m *Mesh) Grid(minX, minY, maxX, maxY, step float64) ([][]float64, error) {
	if !(step > 0) {
		return nil, errors.Errorf("grid step must be positive, got %v", step)
	}
	if maxX < minX || maxY < minY {
		return nil, errors.Errorf("empty grid extent (%v, %v)-(%v, %v)", minX, minY, maxX, maxY)
	}

	tolerance := m.config.Tolerance
	fx := math.Floor((maxX-minX)/step+tolerance) + 1
	fy := math.Floor((maxY-minY)/step+tolerance) + 1
	if fx*fy > MaxGridCells {
		return nil, errors.Errorf("grid of %v x %v cells exceeds the limit of %d", fx, fy, MaxGridCells)
	}
	nx, ny := int(fx), int(fy)

	grid := make([][]float64, ny)
	for i := range grid {
		row := make([]float64, nx)
		y := minY + float64(i)*step
		for j := range row {
			x := minX + float64(j)*step
			if z, ok := m.Query(x, y); ok {
				row[j] = z
			} else {
				row[j] = math.NaN()
			}
		}
		grid[i] = row
	}
	return grid, nil
}
