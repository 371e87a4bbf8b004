package advanced

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
)

// Create a triangle, caching the plane through its three points. Triangles
// where all three points share an x or a y value (or which are otherwise
// collinear) have no usable plane, and are rejected.
//
// The vertices are stored counterclockwise regardless of the order given, so
// that the circumcircle predicate does not need to know about orientation.
func NewTriangle(p1, p2, p3 *Point, tolerance float64) (*Triangle, error) {
	if p1.IsIdeal() || p2.IsIdeal() || p3.IsIdeal() {
		return newIdealTriangle(p1, p2, p3)
	}
	if EqualWithin(p1.X, p2.X, tolerance) && EqualWithin(p2.X, p3.X, tolerance) {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("degenerate triangle %v %v %v: all points share x = %v", *p1, *p2, *p3, p1.X)}
	}
	if EqualWithin(p1.Y, p2.Y, tolerance) && EqualWithin(p2.Y, p3.Y, tolerance) {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("degenerate triangle %v %v %v: all points share y = %v", *p1, *p2, *p3, p1.Y)}
	}

	area := SignedArea2(p1, p2, p3)
	if area == 0 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("degenerate triangle %v %v %v: points are collinear", *p1, *p2, *p3)}
	}
	if area < 0 {
		p2, p3 = p3, p2
	}

	return &Triangle{
		P1:    p1,
		P2:    p2,
		P3:    p3,
		Plane: NewPlane(p1, p2, p3),
	}, nil
}

// Orientation of a triangle touching the supertriangle is decided in the limit,
// where the anchor coordinates of its ideal corners don't matter.
func newIdealTriangle(p1, p2, p3 *Point) (*Triangle, error) {
	switch symbolicOrientation(p1, p2, p3).sign(0) {
	case 0:
		return nil, &InvalidInputError{Reason: fmt.Sprintf("degenerate triangle %v %v %v: points are collinear", *p1, *p2, *p3)}
	case -1:
		p2, p3 = p3, p2
	}
	return &Triangle{
		P1:    p1,
		P2:    p2,
		P3:    p3,
		Plane: NewPlane(p1, p2, p3),
	}, nil
}

// Twice the signed area of the triangle's projection onto the xy plane.
// Positive when the points wind counterclockwise.
func SignedArea2(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func (t *Triangle) Vertices() [3]*Point {
	return [3]*Point{t.P1, t.P2, t.P3}
}

func (t *Triangle) Edges() []Edge {
	return []Edge{
		NewEdge(t.P1, t.P2),
		NewEdge(t.P2, t.P3),
		NewEdge(t.P3, t.P1),
	}
}

// Area of the projection onto the xy plane
func (t *Triangle) Area() float64 {
	return math.Abs(SignedArea2(t.P1, t.P2, t.P3)) / 2
}

func (t *Triangle) HasVertexIn(set PointSet) bool {
	return set.Contains(t.P1) || set.Contains(t.P2) || set.Contains(t.P3)
}

// Does p lie strictly inside the circle through the triangle's vertices?
//
// This is the lifted paraboloid test: translate so p is the origin, lift each
// vertex onto z = x² + y², and take the orientation determinant
//
//	| ax ay ax²+ay² |
//	| bx by bx²+by² |
//	| cx cy cx²+cy² |
//
// which, for a counterclockwise triangle, is positive exactly when p is inside
// the circle. A point exactly on the circle gives zero and counts as outside.
//
// The three 2x2 minors sum to twice the triangle's area. When that is tiny
// compared to the distances involved, the triangle is a sliver as seen from p
// and the sign of the determinant is noise, so we report the point as outside.
//
// Triangles with a supertriangle corner use the limit of the same determinant
// as the corner goes to infinity. For one ideal corner the circle becomes the
// half plane beyond the finite edge, plus the open edge itself.
func (t *Triangle) ContainsInCircumcircle(p *Point, tolerance float64) bool {
	if t.hasIdealVertex() {
		return t.symbolicInCircle(p).sign(tolerance) > 0
	}

	a := t.P1.Sub(p)
	b := t.P2.Sub(p)
	c := t.P3.Sub(p)

	detAB := a.X*b.Y - a.Y*b.X
	detBC := b.X*c.Y - b.Y*c.X
	detCA := c.X*a.Y - c.Y*a.X

	liftA := a.X*a.X + a.Y*a.Y
	liftB := b.X*b.X + b.Y*b.Y
	liftC := c.X*c.X + c.Y*c.Y

	scale := math.Max(liftA, math.Max(liftB, liftC))
	if detAB+detBC+detCA <= tolerance*scale {
		return false
	}

	return liftA*detBC+liftB*detCA+liftC*detAB > 0
}

// Point in triangle test with inclusive boundaries. The slack eps is applied
// to the barycentric coordinates, so a point on an edge shared by two
// triangles is accepted by both. Which one a caller sees first is not
// specified.
func (t *Triangle) IsInside(x, y, eps float64) bool {
	// Cheap rejection: if every vertex is off to one side of the point, it
	// can't be inside.
	minX := math.Min(t.P1.X, math.Min(t.P2.X, t.P3.X))
	maxX := math.Max(t.P1.X, math.Max(t.P2.X, t.P3.X))
	minY := math.Min(t.P1.Y, math.Min(t.P2.Y, t.P3.Y))
	maxY := math.Max(t.P1.Y, math.Max(t.P2.Y, t.P3.Y))
	slackX := eps * (maxX - minX)
	slackY := eps * (maxY - minY)
	if x < minX-slackX || x > maxX+slackX || y < minY-slackY || y > maxY+slackY {
		return false
	}

	u, v, ok := t.Barycentric(x, y)
	if !ok {
		return false
	}
	return u >= -eps && v >= -eps && u+v <= 1+eps
}

// Barycentric coordinates of (x, y) with respect to the edge vectors P1->P3
// (u) and P1->P2 (v). ok is false for a triangle with no area.
func (t *Triangle) Barycentric(x, y float64) (u, v float64, ok bool) {
	v0x, v0y := t.P3.X-t.P1.X, t.P3.Y-t.P1.Y
	v1x, v1y := t.P2.X-t.P1.X, t.P2.Y-t.P1.Y
	v2x, v2y := x-t.P1.X, y-t.P1.Y

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return 0, 0, false
	}
	invDenom := 1 / denom
	u = (dot11*dot02 - dot01*dot12) * invDenom
	v = (dot00*dot12 - dot01*dot02) * invDenom
	return u, v, true
}

// Elevation of the triangle's plane at (x, y). This does not check that the
// point is inside the triangle.
//
// This is Plane.SolveForZ rearranged around P1, which avoids subtracting two
// large products when the coordinates are far from the origin.
func (t *Triangle) Interpolate(x, y float64) float64 {
	pl := t.Plane
	return t.P1.Z - (pl.A*(x-t.P1.X)+pl.B*(y-t.P1.Y))/pl.C
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s (%v, %v, %v) (%v, %v, %v) (%v, %v, %v)",
		t.DbgName(),
		t.P1.X, t.P1.Y, t.P1.Z,
		t.P2.X, t.P2.Y, t.P2.Z,
		t.P3.X, t.P3.Y, t.P3.Z,
	)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.Plane.C <= 0 { // Should never happen once constructed
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
