package advanced

import "fmt"

// Returned when the caller supplies points that cannot be triangulated: too
// few points, duplicate locations, malformed records, or a triangle which
// would be degenerate.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// Returned when the triangle count after an insertion step does not match
// 2(k+3) - 5. This is always a bug in the predicates, never a caller error,
// and the mesh it would have produced is structurally wrong.
type TriangulationInvariantError struct {
	// One based insertion step
	Step     int
	Expected int
	Actual   int
	Point    *Point
}

func (e *TriangulationInvariantError) Error() string {
	if e.Point == nil {
		return fmt.Sprintf(
			"triangulation invariant violated after insertion step %d: expected %d triangles, have %d",
			e.Step, e.Expected, e.Actual,
		)
	}
	return fmt.Sprintf(
		"triangulation invariant violated after inserting point %d (%v, %v): expected %d triangles, have %d",
		e.Step, e.Point.X, e.Point.Y, e.Expected, e.Actual,
	)
}
