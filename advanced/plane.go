package advanced

import "github.com/golang/geo/r3"

// The plane through three points. The normal is (P2 - P1) × (P3 - P1), so for
// a counterclockwise triangle C is positive and equals twice the projected
// area.
func NewPlane(p1, p2, p3 *Point) Plane {
	a := vector(p1)
	normal := vector(p2).Sub(a).Cross(vector(p3).Sub(a))
	return Plane{
		A: normal.X,
		B: normal.Y,
		C: normal.Z,
		D: normal.Dot(a),
	}
}

func vector(p *Point) r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

func (pl Plane) Normal() r3.Vector {
	return r3.Vector{X: pl.A, Y: pl.B, Z: pl.C}
}

func (pl Plane) SolveForZ(x, y float64) float64 {
	return (pl.D - pl.A*x - pl.B*y) / pl.C
}

// Partial derivatives of z over the plane
func (pl Plane) Gradient() (dzdx, dzdy float64) {
	return -pl.A / pl.C, -pl.B / pl.C
}
