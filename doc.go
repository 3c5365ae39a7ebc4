// Package monospline provides monotone cubic interpolation in pure Go.
//
// The interpolant is a piecewise cubic Hermite curve fitted with the
// Fritsch-Carlson tangent limiter: it passes exactly through every sample
// point and never overshoots or oscillates beyond the monotone trend of the
// data. If the samples are increasing (or decreasing) across an interval,
// the fitted curve is too.
//
// # Features
//
//   - Shape-preserving: no overshoot, no ringing between samples
//   - Exact at samples: the curve reproduces every (x, y) pair
//   - Clamped extrapolation: queries outside the fitted domain return the
//     nearest endpoint value rather than a runaway polynomial
//   - Order-independent input: sample pairs are sorted by x during fitting
//   - O(n log n) fit, O(log n) per evaluation
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// Fit once, evaluate any number of times:
//
//	sp, err := monospline.Fit(
//	    []float64{0, 1, 2, 3, 4},
//	    []float64{0, 1, 4, 9, 16},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := sp.Eval(2.5)
//
// For one-shot use the convenience helpers avoid keeping the spline around:
//
//	y, err := monospline.Interpolate(xs, ys, 2.5)
//	curve, err := monospline.Curve(xs, ys, queries)
//
// # Resampling
//
// [Resample] treats a slice as a uniformly sampled signal and re-samples it
// at a new rate through the monotone spline. Because the interpolant cannot
// overshoot, resampled envelopes and control signals stay inside the range
// of the source data:
//
//	out, err := monospline.Resample(samples, 44100, 48000)
//
// # Preconditions
//
// Sample x-coordinates must be pairwise distinct. Duplicate x values make
// the secant slope of the shared segment a division by zero and the fitted
// tangents come out NaN/Inf; [Fit] does not detect this, it is the caller's
// contract. Near-duplicate x values are accepted but amplify floating-point
// error in the tangent limiter.
//
// # Thread Safety
//
// A fitted [Spline] is immutable. Eval and EvalAll never mutate it, so a
// single spline may be shared and evaluated from any number of goroutines
// without locking.
package monospline
