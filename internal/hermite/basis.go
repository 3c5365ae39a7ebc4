// Package hermite provides the cubic Hermite basis polynomials and the
// monotone tangent limiter used to fit shape-preserving splines.
package hermite

// The four cubic Hermite basis functions on the unit interval. A segment
// between samples k and k+1 is evaluated as
//
//	y(t) = y[k]*H00(t) + dx*m[k]*H10(t) + y[k+1]*H01(t) + dx*m[k+1]*H11(t)
//
// where t is the normalized position in the segment, dx its width and m the
// endpoint tangents. H00 and H01 blend the endpoint values (they sum to 1
// for every t), H10 and H11 blend the endpoint derivatives.

// H00 is the basis cubic weighting the left endpoint value: (1+2t)(1-t)^2.
func H00(t float64) float64 {
	return (1 + 2*t) * (1 - t) * (1 - t)
}

// H10 is the basis cubic weighting the left endpoint tangent: t(1-t)^2.
func H10(t float64) float64 {
	return t * (1 - t) * (1 - t)
}

// H01 is the basis cubic weighting the right endpoint value: t^2(3-2t).
func H01(t float64) float64 {
	return t * t * (3 - 2*t)
}

// H11 is the basis cubic weighting the right endpoint tangent: t^2(t-1).
func H11(t float64) float64 {
	return t * t * (t - 1)
}
