package advanced

// A point on the surface. Index is the caller's external index for the
// point, used to map triangles back onto the caller's ordering.
//
// Points are always handled by pointer and never modified after they are
// created, so they can be shared between triangles and used as map keys.
type Point struct {
	X, Y, Z float64
	Index   int

	// Nonzero only for the supertriangle's corners, which recede to infinity
	// along this direction. See ideal.go.
	dirX, dirY float64
}

// An unordered pair of points. Edges should be created with NewEdge, which
// normalizes the order so that Edge values compare equal regardless of the
// direction they were created in.
type Edge struct {
	A, B *Point
}

// Coefficients of the plane A*x + B*y + C*z = D
type Plane struct {
	A, B, C, D float64
}

type Triangle struct {
	P1, P2, P3 *Point
	Plane      Plane
}

type TriangleList []*Triangle

type PointSet map[*Point]struct{}

// Used for counting edge multiplicity while carving out a cavity
type EdgeCounter map[Edge]int

// An axis aligned bounding box
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}
