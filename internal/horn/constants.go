package horn

const (
	// AreaContinuityTolerance is the maximum relative mismatch allowed
	// between the mouth area of one segment and the throat area of the
	// next (0.1%).
	AreaContinuityTolerance = 1e-3

	// sinOverArgThreshold bounds |b·L| below which sin(bL)/b is
	// evaluated by its series to avoid 0/0 at the cutoff frequency.
	sinOverArgThreshold = 1e-8

	// sinOverSeriesCoeff is the x² coefficient of sin(x)/x = 1 − x²/6.
	sinOverSeriesCoeff = 1.0 / 6.0

	// hyperbolicShapeMin excludes T = 0; the catenoidal end of the
	// Salmon family is reached only as a limit.
	hyperbolicShapeMin = 0.0

	// hyperbolicShapeMax is the exponential end of the family (T = 1).
	hyperbolicShapeMax = 1.0
)
