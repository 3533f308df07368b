// Package spline fits and evaluates parametric interpolating B-spline
// curves. The fit is exact (zero smoothing): the curve passes through
// every input point at its prescribed parameter value. Degree 1 is the
// input polyline itself, degrees 2-5 are smoother but may overshoot
// beyond the convex hull of neighboring points.
package spline

import (
	"errors"
	"fmt"
)

// MinDegree and MaxDegree bound the supported curve degrees.
const (
	MinDegree = 1
	MaxDegree = 5
)

// Curve is a fitted parametric B-spline, one control polygon per
// spatial dimension over a shared clamped knot vector.
type Curve struct {
	degree int
	knots  []float64
	ctrl   [][]float64
}

// Fit interpolates each dimension of dims at the given parameter
// values with a B-spline of the requested degree. Parameter values
// must be strictly increasing and there must be more points than the
// degree, otherwise the fit is underdetermined.
func Fit(dims [][]float64, params []float64, degree int) (*Curve, error) {
	if degree < MinDegree || degree > MaxDegree {
		return nil, fmt.Errorf("degree must be in [%d,%d], got %d", MinDegree, MaxDegree, degree)
	}
	n := len(params)
	if n <= degree {
		return nil, fmt.Errorf("need more than %d points for degree %d, got %d", degree, degree, n)
	}
	if len(dims) == 0 {
		return nil, errors.New("no dimensions to fit")
	}
	for d, values := range dims {
		if len(values) != n {
			return nil, fmt.Errorf("dimension %d has %d values for %d parameters", d, len(values), n)
		}
	}
	for i := 1; i < n; i++ {
		if params[i] <= params[i-1] {
			return nil, fmt.Errorf("parameter values must be strictly increasing (index %d)", i)
		}
	}

	knots := interpolationKnots(params, degree)

	// Collocation matrix A[i][j] = B_j(params[i]). With averaged
	// knots the Schoenberg-Whitney condition holds, so A is banded
	// with bandwidth degree and nonsingular.
	m := newBandMatrix(n, degree)
	for i := 0; i < n; i++ {
		span := findSpan(knots, n, degree, params[i])
		bas := basisFuncs(knots, span, degree, params[i])
		for r := 0; r <= degree; r++ {
			m.set(i, span-degree+r, bas[r])
		}
	}
	if err := m.factorize(); err != nil {
		return nil, err
	}

	ctrl := make([][]float64, len(dims))
	for d, values := range dims {
		rhs := make([]float64, n)
		copy(rhs, values)
		m.solve(rhs)
		ctrl[d] = rhs
	}

	return &Curve{degree: degree, knots: knots, ctrl: ctrl}, nil
}

// Dims returns the number of fitted dimensions.
func (c *Curve) Dims() int {
	return len(c.ctrl)
}

// At evaluates the curve at parameter u, one value per dimension.
// Parameters outside the knot domain are clamped to it, so samples a
// rounding error beyond the path ends stay on the curve.
func (c *Curve) At(u float64) []float64 {
	n := len(c.ctrl[0])
	if u < c.knots[c.degree] {
		u = c.knots[c.degree]
	}
	if u > c.knots[n] {
		u = c.knots[n]
	}

	span := findSpan(c.knots, n, c.degree, u)
	bas := basisFuncs(c.knots, span, c.degree, u)

	out := make([]float64, len(c.ctrl))
	for d, ctrl := range c.ctrl {
		var v float64
		for r := 0; r <= c.degree; r++ {
			v += bas[r] * ctrl[span-c.degree+r]
		}
		out[d] = v
	}
	return out
}

// Evaluate evaluates the curve at every parameter in us and returns
// the values grouped per dimension.
func (c *Curve) Evaluate(us []float64) [][]float64 {
	out := make([][]float64, c.Dims())
	for d := range out {
		out[d] = make([]float64, len(us))
	}
	for i, u := range us {
		v := c.At(u)
		for d := range out {
			out[d][i] = v[d]
		}
	}
	return out
}

// interpolationKnots builds a clamped knot vector for interpolation at
// the given parameters using de Boor's knot averaging, which keeps the
// collocation matrix nonsingular for any strictly increasing input.
func interpolationKnots(params []float64, degree int) []float64 {
	n := len(params)
	knots := make([]float64, n+degree+1)
	for i := 0; i <= degree; i++ {
		knots[i] = params[0]
		knots[n+i] = params[n-1]
	}
	for j := 1; j <= n-degree-1; j++ {
		var sum float64
		for k := j; k < j+degree; k++ {
			sum += params[k]
		}
		knots[j+degree] = sum / float64(degree)
	}
	return knots
}

// findSpan locates the knot span index k with knots[k] <= u < knots[k+1]
// by binary search, clamping u at the end of the domain to the last
// nonempty span.
func findSpan(knots []float64, numCtrl, degree int, u float64) int {
	if u >= knots[numCtrl] {
		return numCtrl - 1
	}
	lo, hi := degree, numCtrl
	mid := (lo + hi) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFuncs computes the degree+1 nonvanishing B-spline basis values
// at u on the given span with the Cox-de Boor recursion.
func basisFuncs(knots []float64, span, degree int, u float64) []float64 {
	bas := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)

	bas[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			tmp := bas[r] / (right[r+1] + left[j-r])
			bas[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		bas[j] = saved
	}
	return bas
}
