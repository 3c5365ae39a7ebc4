package hermite

import (
	"math"
)

// Tangents computes one tangent per sample point from the per-segment secant
// slopes, limited so the resulting Hermite curve is monotone wherever the
// data is. deltas[k] must be the secant slope (y[k+1]-y[k])/(x[k+1]-x[k]) of
// segment k; the returned slice has len(deltas)+1 entries.
//
// The limiter follows Fritsch & Carlson, "Monotone Piecewise Cubic
// Interpolation" (SIAM J. Numer. Anal. 17, 1980):
//
//  1. Endpoints take the one-sided secant; interior points take the mean of
//     the two adjacent secants, or 0 when the secants change sign or either
//     is zero (a local extremum needs a flat tangent).
//  2. Segments with zero secant force both endpoint tangents to 0. A nonzero
//     tangent would put a bump on a flat segment, and the ratio step below
//     would divide by zero.
//  3. A tangent pointing against its segment's direction is clamped to 0.
//  4. With alpha = m[k]/delta and beta = m[k+1]/delta, any segment with
//     alpha^2 + beta^2 > 9 has both tangents rescaled by 3/sqrt(...) onto
//     the circle boundary. The Euclidean bound is the correct monotone
//     region; clamping alpha and beta to 3 independently can leave the pair
//     outside it and produces visible non-monotone dips.
func Tangents(deltas []float64) []float64 {
	n := len(deltas) + 1
	m := make([]float64, n)
	if len(deltas) == 0 {
		return m
	}

	m[0] = deltas[0]
	m[n-1] = deltas[len(deltas)-1]
	for i := 1; i < n-1; i++ {
		if deltas[i-1]*deltas[i] <= 0 {
			m[i] = 0
		} else {
			m[i] = (deltas[i-1] + deltas[i]) / halfDivisor
		}
	}

	// Flat segments pin both tangents.
	for k, d := range deltas {
		if d == 0 {
			m[k], m[k+1] = 0, 0
		}
	}

	// Direction clamp: a tangent whose sign disagrees with the segment's
	// secant would break monotonicity on that segment.
	for k, d := range deltas {
		if d == 0 {
			continue
		}
		if m[k]/d < 0 {
			m[k] = 0
		}
		if m[k+1]/d < 0 {
			m[k+1] = 0
		}
	}

	// Overshoot rescale onto the alpha^2 + beta^2 <= 9 circle.
	for k, d := range deltas {
		if d == 0 {
			continue
		}
		alpha := m[k] / d
		beta := m[k+1] / d
		if r := alpha*alpha + beta*beta; r > overshootLimitSq {
			tau := overshootLimit / math.Sqrt(r)
			m[k] = tau * alpha * d
			m[k+1] = tau * beta * d
		}
	}

	return m
}
