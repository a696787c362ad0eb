package field

import "errors"

var (
	// ErrOperandExceedsModulus is returned when an operand is not reduced into [0, p)
	ErrOperandExceedsModulus = errors.New("operand is bigger or equal than modulus")

	// ErrNotInvertible is returned when the multiplicative inverse of zero is requested
	ErrNotInvertible = errors.New("operand has no multiplicative inverse")
)
