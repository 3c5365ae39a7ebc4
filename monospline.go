package monospline

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-monotone-spline/internal/hermite"
)

// Common errors returned by the package.
var (
	// ErrInvalidInput indicates malformed sample data.
	ErrInvalidInput = errors.New("invalid sample data")

	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("invalid sample rate")
)

// Spline is a fitted monotone cubic interpolant: the sorted sample tables
// plus the per-segment geometry and limited tangents derived from them.
// It is the "compiled" form of the curve. A Spline is immutable after Fit
// and safe for concurrent evaluation.
type Spline struct {
	xs, ys []float64 // samples, sorted ascending by x
	dxs    []float64 // segment widths x[k+1]-x[k]
	deltas []float64 // secant slopes dy/dx per segment
	ms     []float64 // limited tangent per sample
}

// Fit constructs a monotone cubic spline through the given samples.
// xs and ys must have equal length; the pairs may arrive in any order,
// Fit sorts a private copy by ascending x.
//
// Zero samples yield a spline that evaluates to [DefaultValue] everywhere;
// a single sample yields a constant spline at its y value. Neither is an
// error.
//
// Precondition: xs must be pairwise distinct. Duplicate x values divide by
// a zero segment width and produce NaN/Inf tangents; Fit does not check
// for them.
func Fit(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs) = %d but len(ys) = %d", ErrInvalidInput, len(xs), len(ys))
	}

	n := len(xs)
	s := &Spline{
		xs: make([]float64, n),
		ys: make([]float64, n),
	}
	if n == 0 {
		return s, nil
	}

	// Sort the pair tables jointly by x. Argsort orders the x copy in
	// place and reports where each element came from.
	copy(s.xs, xs)
	inds := make([]int, n)
	floats.Argsort(s.xs, inds)
	for i, j := range inds {
		s.ys[i] = ys[j]
	}

	if n == 1 {
		return s, nil
	}

	s.dxs = make([]float64, n-1)
	s.deltas = make([]float64, n-1)
	for k := 0; k < n-1; k++ {
		s.dxs[k] = s.xs[k+1] - s.xs[k]
		s.deltas[k] = (s.ys[k+1] - s.ys[k]) / s.dxs[k]
	}

	s.ms = hermite.Tangents(s.deltas)
	return s, nil
}

// Eval computes the value of the spline at u.
//
// Queries at or beyond the fitted domain are clamped to the endpoint
// values; queries landing exactly on a sample return the stored y. Eval
// never fails and never mutates the spline.
func (s *Spline) Eval(u float64) float64 {
	n := len(s.xs)
	if n == 0 {
		return DefaultValue
	}
	if n == 1 || u <= s.xs[0] {
		return s.ys[0]
	}
	if u >= s.xs[n-1] {
		return s.ys[n-1]
	}

	// First index with xs[i] >= u. u is strictly inside the domain here,
	// so 1 <= i <= n-1.
	i := sort.SearchFloat64s(s.xs, u)
	if s.xs[i] == u {
		return s.ys[i]
	}

	k := i - 1
	t := (u - s.xs[k]) / s.dxs[k]
	return s.ys[k]*hermite.H00(t) +
		s.dxs[k]*s.ms[k]*hermite.H10(t) +
		s.ys[k+1]*hermite.H01(t) +
		s.dxs[k]*s.ms[k+1]*hermite.H11(t)
}

// EvalAll evaluates the spline at every query point. An optional output
// slice can be supplied to avoid an allocation; it must be at least as long
// as us.
func (s *Spline) EvalAll(us []float64, out ...[]float64) []float64 {
	var dst []float64
	if len(out) > 0 {
		dst = out[0][:len(us)]
	} else {
		dst = make([]float64, len(us))
	}
	for i, u := range us {
		dst[i] = s.Eval(u)
	}
	return dst
}

// Len returns the number of sample points the spline was fitted from.
func (s *Spline) Len() int {
	return len(s.xs)
}

// IsEmpty reports whether the spline was fitted from zero samples.
func (s *Spline) IsEmpty() bool {
	return len(s.xs) == 0
}

// Domain returns the x range covered by the samples. Queries outside
// [lo, hi] are clamped by Eval. The empty spline returns (0, 0).
func (s *Spline) Domain() (lo, hi float64) {
	if len(s.xs) == 0 {
		return 0, 0
	}
	return s.xs[0], s.xs[len(s.xs)-1]
}
