package hermite

// Tangent limiter constants (Fritsch & Carlson 1980).
const (
	// overshootLimit bounds the tangent/secant ratios alpha and beta.
	// Monotonicity is guaranteed while alpha^2 + beta^2 <= overshootLimit^2.
	overshootLimit = 3.0

	// overshootLimitSq is the squared radius of the monotone region.
	overshootLimitSq = overshootLimit * overshootLimit

	// halfDivisor averages the two adjacent secant slopes at interior points.
	halfDivisor = 2.0
)
