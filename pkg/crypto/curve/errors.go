package curve

import "errors"

var (
	// ErrUnsupportedCurve is returned when an unsupported curve is requested
	ErrUnsupportedCurve = errors.New("unsupported curve type")

	// ErrInvalidCurve is returned when curve parameters are invalid
	ErrInvalidCurve = errors.New("invalid curve parameters")

	// ErrNilPoint is returned when a nil point is provided
	ErrNilPoint = errors.New("point cannot be nil")

	// ErrPointNotOnCurve is returned when an operand does not satisfy the curve equation
	ErrPointNotOnCurve = errors.New("point is not on the curve")

	// ErrEqualOperands is returned when Add is called with two equal points
	ErrEqualOperands = errors.New("points should not be the same")

	// ErrZeroDenominator is returned when doubling a point with y = 0
	ErrZeroDenominator = errors.New("tangent slope denominator is zero")

	// ErrInvalidScalar is returned when a scalar is nil or negative
	ErrInvalidScalar = errors.New("invalid scalar value")

	// ErrScalarZero is returned when a scalar is zero but shouldn't be
	ErrScalarZero = errors.New("scalar is zero")

	// ErrNoGenerator is returned when a base point operation is used on a
	// curve built without a generator
	ErrNoGenerator = errors.New("curve has no generator")
)
