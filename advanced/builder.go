package advanced

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Multiplier for the supertriangle's anchors past the input's bounding box
const superTriangleScale = 20

// Directions in which the supertriangle's corners recede. The line each corner
// travels along misses the bounding box of the input, so no input edge is ever
// collinear with a corner.
var superTriangleDirections = [3][2]float64{{-20, -2}, {20, -2}, {1, 20}}

type PointList []*Point

// Triangulate the points with the Bowyer-Watson algorithm and return the
// resulting mesh. Invalid input and internal inconsistencies panic with a
// BuildError; see HandleBuildPanicRecover.
//
// The points are not modified, and the slice itself is copied before sorting.
func (list PointList) Triangulate(config Config) *Mesh {
	config = config.withDefaults()
	points := list.prepare(config.Tolerance)

	super := NewSuperTriangle(points, config.Tolerance)
	superPoints := make(PointSet)
	for _, p := range super.Vertices() {
		superPoints.Add(p)
	}

	logger := config.Logger
	triangles := TriangleList{super}
	for i, p := range points {
		step := i + 1
		var affected int
		triangles, affected = triangles.Insert(p, config.Tolerance)

		checkTriangleCount(step, p, triangles)

		if ce := logger.Check(zap.DebugLevel, "inserted point"); ce != nil {
			ce.Write(
				zap.Int("step", step),
				zap.Int("index", p.Index),
				zap.Float64("x", p.X),
				zap.Float64("y", p.Y),
				zap.Int("cavity", affected),
				zap.Int("triangles", len(triangles)),
				zap.String("newest", triangles[len(triangles)-1].DbgName()),
			)
		}
	}

	// Strip away the supertriangle, along with every triangle that hangs off
	// of one of its corners.
	var result TriangleList
	for _, t := range triangles {
		if !t.HasVertexIn(superPoints) {
			result = append(result, t)
		}
	}

	logger.Debug("triangulation complete",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(result)),
	)

	return &Mesh{
		Points:    points,
		Triangles: result,
		config:    config,
		bounds:    BoundsOf(points),
	}
}

// Euler's formula for a triangulation whose convex hull is the three
// supertriangle corners.
func checkTriangleCount(step int, p *Point, triangles TriangleList) {
	expected := 2*(step+3) - 5
	if len(triangles) != expected {
		throw(&TriangulationInvariantError{
			Step:     step,
			Expected: expected,
			Actual:   len(triangles),
			Point:    p,
		})
	}
}

// Validate and sort a copy of the input.
func (list PointList) prepare(tolerance float64) PointList {
	if len(list) < 3 {
		throw(&InvalidInputError{Reason: fmt.Sprintf("need at least 3 points, got %d", len(list))})
	}

	points := make(PointList, len(list))
	for i, p := range list {
		if p == nil {
			throw(&InvalidInputError{Reason: fmt.Sprintf("point %d is nil", i)})
		}
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			throw(&InvalidInputError{Reason: fmt.Sprintf("point %d has a non-finite coordinate: %v", p.Index, *p)})
		}
		points[i] = p
	}

	SortPoints(points)

	// Points at the same location are within tolerance in x, so after sorting
	// each point only needs comparing with the run that follows it.
	for i, p := range points {
		for _, other := range points[i+1:] {
			if other.X-p.X > tolerance {
				break
			}
			if p.SameLocation(other, tolerance) {
				throw(&InvalidInputError{Reason: fmt.Sprintf(
					"points %d and %d share location (%v, %v)", p.Index, other.Index, other.X, other.Y,
				)})
			}
		}
	}
	return points
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Build a triangle which strictly contains the bounding box of the points.
// Its corners are ideal points which start at anchors around the box and
// recede to infinity, so no circumcircle of the input ever reaches them. They
// get negative indices so they stand out in debug output.
func NewSuperTriangle(points []*Point, tolerance float64) *Triangle {
	bounds := BoundsOf(points)
	delta := math.Max(bounds.Width(), bounds.Height())
	if delta == 0 {
		delta = 1
	}
	midX := (bounds.MinX + bounds.MaxX) / 2
	midY := (bounds.MinY + bounds.MaxY) / 2

	anchors := [3][2]float64{
		{midX - superTriangleScale*delta, midY - delta},
		{midX + superTriangleScale*delta, midY - delta},
		{midX, midY + superTriangleScale*delta},
	}
	var corners [3]*Point
	for i, anchor := range anchors {
		dir := superTriangleDirections[i]
		corners[i] = &Point{
			X:     anchor[0],
			Y:     anchor[1],
			Index: -(i + 1),
			dirX:  dir[0] * delta,
			dirY:  dir[1] * delta,
		}
	}

	super, err := NewTriangle(corners[0], corners[1], corners[2], tolerance)
	if err != nil {
		fatalf("could not build supertriangle: %v", err)
	}
	return super
}

// Insert a point into a triangulation, returning the new set of triangles
// along with the size of the cavity that was replaced.
//
// The cavity is every triangle whose circumcircle contains p. Its boundary is
// made of the edges that belong to exactly one cavity triangle; edges shared
// by two cavity triangles are interior and disappear. Each boundary edge is
// then joined to p.
func (list TriangleList) Insert(p *Point, tolerance float64) (TriangleList, int) {
	var cavity TriangleList
	result := make(TriangleList, 0, len(list)+2)
	for _, t := range list {
		if t.ContainsInCircumcircle(p, tolerance) {
			cavity = append(cavity, t)
		} else {
			result = append(result, t)
		}
	}

	edges := make(EdgeCounter)
	for _, t := range cavity {
		edges.Add(t.Edges()...)
	}

	for _, edge := range edges.Unique() {
		t, err := NewTriangle(edge.A, edge.B, p, tolerance)
		if err != nil {
			throw(err)
		}
		result = append(result, t)
	}
	return result, len(cavity)
}
