package advanced

import "math"

// The supertriangle's corners are ideal points: each one sits at its anchor
// (the point's X and Y) plus R times its direction, where R is larger than any
// finite quantity. Predicates involving them become polynomials in R, and
// their sign is the sign of the highest degree coefficient that survives.
//
// This keeps the corners outside every circumcircle of the input, so hull
// triangles are never carved away by a corner.

// Highest power of R that can appear in the circumcircle determinant
const maxIdealDegree = 4

// A polynomial in R, lowest degree first. Alongside each coefficient we keep
// the sum of the magnitudes of the terms that went into it, which bounds the
// rounding error in that coefficient.
type symbolic struct {
	coef, mag [maxIdealDegree + 1]float64
}

func constant(c float64) symbolic {
	var s symbolic
	s.coef[0] = c
	s.mag[0] = math.Abs(c)
	return s
}

func (p *Point) IsIdeal() bool {
	return p.dirX != 0 || p.dirY != 0
}

// Position of p as a polynomial in R
func coordinates(p *Point) (x, y symbolic) {
	x = constant(p.X)
	y = constant(p.Y)
	x.coef[1], x.mag[1] = p.dirX, math.Abs(p.dirX)
	y.coef[1], y.mag[1] = p.dirY, math.Abs(p.dirY)
	return x, y
}

func relativeCoordinates(p, origin *Point) (x, y symbolic) {
	px, py := coordinates(p)
	ox, oy := coordinates(origin)
	return px.minus(ox), py.minus(oy)
}

func (a symbolic) plus(b symbolic) symbolic {
	for i := range a.coef {
		a.coef[i] += b.coef[i]
		a.mag[i] += b.mag[i]
	}
	return a
}

func (a symbolic) minus(b symbolic) symbolic {
	for i := range a.coef {
		a.coef[i] -= b.coef[i]
		a.mag[i] += b.mag[i]
	}
	return a
}

func (a symbolic) times(b symbolic) symbolic {
	var result symbolic
	for i := range a.coef {
		for j := range b.coef {
			if a.coef[i] == 0 && a.mag[i] == 0 || b.coef[j] == 0 && b.mag[j] == 0 {
				continue
			}
			if i+j > maxIdealDegree {
				fatalf("symbolic product exceeds degree %d", maxIdealDegree)
			}
			result.coef[i+j] += a.coef[i] * b.coef[j]
			result.mag[i+j] += a.mag[i] * b.mag[j]
		}
	}
	return result
}

// Sign of the polynomial as R grows without bound. A coefficient no larger
// than cutoff times its magnitude bound is rounding noise and counts as zero;
// with a cutoff of zero only exact zeros are skipped.
func (a symbolic) sign(cutoff float64) int {
	for i := maxIdealDegree; i >= 0; i-- {
		c := a.coef[i]
		if c == 0 || math.Abs(c) <= cutoff*a.mag[i] {
			continue
		}
		if c > 0 {
			return 1
		}
		return -1
	}
	return 0
}

// Twice the signed area of (a, b, c), as a polynomial in R
func symbolicOrientation(a, b, c *Point) symbolic {
	bx, by := relativeCoordinates(b, a)
	cx, cy := relativeCoordinates(c, a)
	return bx.times(cy).minus(by.times(cx))
}

// The lifted circumcircle determinant with p translated to the origin, as a
// polynomial in R. p must be finite.
func (t *Triangle) symbolicInCircle(p *Point) symbolic {
	ax, ay := relativeCoordinates(t.P1, p)
	bx, by := relativeCoordinates(t.P2, p)
	cx, cy := relativeCoordinates(t.P3, p)

	detAB := ax.times(by).minus(ay.times(bx))
	detBC := bx.times(cy).minus(by.times(cx))
	detCA := cx.times(ay).minus(cy.times(ax))

	liftA := ax.times(ax).plus(ay.times(ay))
	liftB := bx.times(bx).plus(by.times(by))
	liftC := cx.times(cx).plus(cy.times(cy))

	return liftA.times(detBC).plus(liftB.times(detCA)).plus(liftC.times(detAB))
}

func (t *Triangle) hasIdealVertex() bool {
	return t.P1.IsIdeal() || t.P2.IsIdeal() || t.P3.IsIdeal()
}
