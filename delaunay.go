// Interpolated surfaces over scattered elevation points.
//
// This package builds a Delaunay triangulation (incrementally, with the
// Bowyer-Watson algorithm) over a set of (x, y, z) points, and answers
// queries for the elevation at any (x, y) inside their convex hull by
// interpolating linearly across the containing triangle.
package delaunay

import (
	"fmt"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type Mesh = advanced.Mesh
type Config = advanced.Config
type Sample = advanced.Sample

type InvalidInputError = advanced.InvalidInputError
type TriangulationInvariantError = advanced.TriangulationInvariantError

func DefaultConfig() Config {
	return advanced.DefaultConfig()
}

// Build a mesh from records of the form {x, y, z} or {x, y, z, index}. When
// the index is omitted, the record's position in the argument list is used.
//
// At least three records are required, and no two may share an (x, y)
// location.
func Build(records ...[]float64) (*Mesh, error) {
	return BuildWithConfig(DefaultConfig(), records...)
}

func BuildWithConfig(config Config, records ...[]float64) (*Mesh, error) {
	points := make([]*Point, len(records))
	for i, record := range records {
		point, err := pointFromRecord(i, record)
		if err != nil {
			return nil, err
		}
		points[i] = point
	}
	return BuildPoints(config, points)
}

// Build a mesh from points which already carry their indices.
func BuildPoints(config Config, points []*Point) (mesh *Mesh, err error) {
	defer func() {
		recoveredErr := advanced.HandleBuildPanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()
	return advanced.PointList(points).Triangulate(config), nil
}

func pointFromRecord(i int, record []float64) (*Point, error) {
	switch len(record) {
	case 3:
		return &Point{X: record[0], Y: record[1], Z: record[2], Index: i}, nil
	case 4:
		index := int(record[3])
		if float64(index) != record[3] {
			return nil, errors.WithStack(&InvalidInputError{Reason: fmt.Sprintf("record %d has a non-integer index %v", i, record[3])})
		}
		return &Point{X: record[0], Y: record[1], Z: record[2], Index: index}, nil
	}
	return nil, errors.WithStack(&InvalidInputError{Reason: fmt.Sprintf("record %d has %d values, want 3 or 4", i, len(record))})
}
