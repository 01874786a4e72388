package engine

// CubicCoefficients derives the coefficients of the cubic polynomial
// a*t^3 + b*t^2 + c*t + d passing through y0 at t=0 and y1 at t=1, with
// endpoint tangents estimated by central differences over the four
// evenly spaced samples ym1, y0, y1, y2 (Catmull-Rom form):
//
//	tangent0 = (y1 - ym1) / 2
//	tangent1 = (y2 - y0) / 2
//
// The central-difference estimate is exact for quadratics, so sampled
// polynomials up to degree 2 are reproduced without error.
func CubicCoefficients(ym1, y0, y1, y2 float64) (a, b, c, d float64) {
	t0 := (y1 - ym1) / 2
	t1 := (y2 - y0) / 2

	a = 2*(y0-y1) + t0 + t1
	b = 3*(y1-y0) - 2*t0 - t1
	c = t0
	d = y0
	return a, b, c, d
}

// CubicInterpolate evaluates the Catmull-Rom cubic through the four
// samples at blend in [0, 1], measured from y0 toward y1.
// blend=0 yields exactly y0, so the cubic kernel agrees with the linear
// kernel at sample points.
func CubicInterpolate(ym1, y0, y1, y2, blend float64) float64 {
	a, b, c, d := CubicCoefficients(ym1, y0, y1, y2)
	return ((a*blend+b)*blend+c)*blend + d
}
