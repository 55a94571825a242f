package geom

import (
	"github.com/dmarsden-gvd/gvdfortune/numeric"
	"github.com/dmarsden-gvd/gvdfortune/point"
)

// Parabola is the locus of points equidistant from Focus and the
// horizontal directrix y = K - P, expressed in vertex form
// y = (x-H)^2/(4*P) + K, where (H,K) is the vertex and P is the signed
// distance from the vertex to the focus (and, with opposite sign, to the
// directrix).
type Parabola struct {
	Focus     point.Point
	Directrix float64
	H, K, P   float64
}

// CreateParabola builds the parabola for a point site swept by a horizontal
// directrix. The vertex sits midway between focus and directrix; P is half
// their signed separation, so P > 0 as long as the directrix has not yet
// swept past the focus.
func CreateParabola(focus point.Point, directrix float64) Parabola {
	p := (focus.Y() - directrix) / 2
	return Parabola{
		Focus:     focus,
		Directrix: directrix,
		H:         focus.X(),
		K:         directrix + p,
		P:         p,
	}
}

// Y evaluates the parabola at x.
func (pb Parabola) Y(x float64) float64 {
	dx := x - pb.H
	return dx*dx/(4*pb.P) + pb.K
}

// ppIntersect returns the x coordinates where two parabolas sharing a
// directrix meet, by equating their vertex forms and solving the
// resulting quadratic in x. Foci at different heights give a quadratic
// with two real roots; foci at the same height give equal P, the x^2
// term cancels, and the equation is linear with a single root. This
// returns 0, 1, or 2 roots as numeric.Quadratic classifies the equation.
func ppIntersect(left, right Parabola, epsilon float64) []float64 {
	a := 1/(4*left.P) - 1/(4*right.P)
	b := -2*left.H/(4*left.P) + 2*right.H/(4*right.P)
	c := left.H*left.H/(4*left.P) + left.K - right.H*right.H/(4*right.P) - right.K
	return numeric.Quadratic(a, b, c, epsilon)
}
