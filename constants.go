package monospline

// DefaultValue is what Eval returns for a spline fitted from zero samples.
const DefaultValue = 0.0

// Resampling constants.
const (
	// minResampleInput is the smallest input that yields a fitted curve;
	// shorter inputs are passed through as constants.
	minResampleInput = 2
)
