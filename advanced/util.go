package advanced

import (
	"math"
	"sort"
)

const (
	// Default tolerance for comparing coordinates
	Tolerance = 1e-9
	// Default slack for barycentric containment tests
	Epsilon = 1e-9
)

// To compensate for imprecision in floats, equality is tolerance based. This
// is what lets us treat near duplicate coordinates as the same location.
func Equal(a, b float64) bool {
	return EqualWithin(a, b, Tolerance)
}

func EqualWithin(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Lexicographic ordering on (x, y, z), using tolerant equality on each
// component before falling through to the next one.
func (p *Point) Less(other *Point) bool {
	if !Equal(p.X, other.X) {
		return p.X < other.X
	}
	if !Equal(p.Y, other.Y) {
		return p.Y < other.Y
	}
	if !Equal(p.Z, other.Z) {
		return p.Z < other.Z
	}
	return false
}

// Two points are at the same location if their x and y match. Z is not
// considered, since two records at the same location with different
// elevations are exactly the kind of input we have to reject.
func (p *Point) SameLocation(other *Point, tolerance float64) bool {
	return EqualWithin(p.X, other.X, tolerance) && EqualWithin(p.Y, other.Y, tolerance)
}

func (p *Point) Sub(other *Point) *Point {
	return &Point{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Sort points into canonical order. The order is exact rather than tolerance
// based, since a tolerant comparison is not transitive.
func SortPoints(points []*Point) {
	sort.Slice(points, func(i, j int) bool {
		return exactLess(points[i], points[j])
	})
}

// Exact lexicographic ordering, used where we need a strict total order on
// distinct points rather than a tolerant one.
func exactLess(a, b *Point) bool {
	switch {
	case a.X != b.X:
		return a.X < b.X
	case a.Y != b.Y:
		return a.Y < b.Y
	case a.Z != b.Z:
		return a.Z < b.Z
	}
	return a.Index < b.Index
}

func NewEdge(a, b *Point) Edge {
	if exactLess(b, a) {
		return Edge{b, a}
	}
	return Edge{a, b}
}

func (c EdgeCounter) Add(edges ...Edge) {
	for _, e := range edges {
		c[e]++
	}
}

// Edges which were seen exactly once, in canonical order. Map iteration order
// is random, so we sort to keep the output reproducible between runs.
func (c EdgeCounter) Unique() []Edge {
	var result []Edge
	for e, count := range c {
		if count == 1 {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].A != result[j].A {
			return exactLess(result[i].A, result[j].A)
		}
		return exactLess(result[i].B, result[j].B)
	})
	return result
}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p *Point) bool {
	_, ok := s[p]
	return ok
}

func BoundsOf(points []*Point) Bounds {
	b := Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, p := range points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}
