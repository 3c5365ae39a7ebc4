package monospline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Interpolate is a convenience function for one-shot evaluation: it fits a
// spline through the samples and evaluates it at u. When the same samples
// are queried repeatedly, fit once with [Fit] and reuse the spline instead.
func Interpolate(xs, ys []float64, u float64) (float64, error) {
	sp, err := Fit(xs, ys)
	if err != nil {
		return 0, err
	}
	return sp.Eval(u), nil
}

// Curve fits a spline through the samples and evaluates it at every query
// point in us.
func Curve(xs, ys, us []float64) ([]float64, error) {
	sp, err := Fit(xs, ys)
	if err != nil {
		return nil, err
	}
	return sp.EvalAll(us), nil
}

// Resample treats samples as a signal sampled uniformly at srcRate and
// returns it re-sampled at dstRate through the monotone spline. The output
// holds ceil(len(samples) * dstRate / srcRate) values; queries past the
// last input sample clamp to it.
//
// Unlike sinc-based resamplers the monotone spline cannot ring or
// overshoot, which makes this suitable for envelopes, automation curves and
// other control signals where staying inside the source range matters more
// than passband flatness.
func Resample(samples []float64, srcRate, dstRate float64) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: src %v Hz, dst %v Hz", ErrInvalidRate, srcRate, dstRate)
	}

	n := len(samples)
	if n == 0 {
		return []float64{}, nil
	}

	outLen := int(math.Ceil(float64(n) * dstRate / srcRate))
	if n < minResampleInput {
		out := make([]float64, outLen)
		for i := range out {
			out[i] = samples[0]
		}
		return out, nil
	}

	xs := floats.Span(make([]float64, n), 0, float64(n-1)/srcRate)
	sp, err := Fit(xs, samples)
	if err != nil {
		return nil, err
	}

	us := make([]float64, outLen)
	for i := range us {
		us[i] = float64(i) / dstRate
	}
	return sp.EvalAll(us), nil
}
