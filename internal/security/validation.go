// Package security holds input validation shared by the curve arithmetic
package security

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNilValue is returned when a required integer is nil
	ErrNilValue = errors.New("nil value provided")

	// ErrInvalidModulus is returned when a field modulus is not a prime > 3
	ErrInvalidModulus = errors.New("invalid modulus: must be a prime greater than 3")

	// ErrInvalidRange is returned when a value is outside [0, p)
	ErrInvalidRange = errors.New("value out of valid range")

	// ErrSingularCurve is returned when 4a^3 + 27b^2 = 0 mod p
	ErrSingularCurve = errors.New("singular curve: discriminant is zero")
)

// primalityRounds is the number of Miller-Rabin rounds used by ValidateModulus
const primalityRounds = 20

var (
	three       = big.NewInt(3)
	four        = big.NewInt(4)
	twentySeven = big.NewInt(27)
)

// ValidateModulus checks that p is a (probable) prime greater than 3
func ValidateModulus(p *big.Int) error {
	if p == nil {
		return ErrNilValue
	}
	if p.Cmp(three) <= 0 || !p.ProbablyPrime(primalityRounds) {
		return fmt.Errorf("%w: p=%s", ErrInvalidModulus, p)
	}
	return nil
}

// ValidateReduced checks that value lies in [0, p)
func ValidateReduced(value, p *big.Int) error {
	if value == nil || p == nil {
		return ErrNilValue
	}
	if value.Sign() < 0 || value.Cmp(p) >= 0 {
		return fmt.Errorf("%w: value=%s p=%s", ErrInvalidRange, value, p)
	}
	return nil
}

// ValidateCurveParams checks the coefficients of y^2 = x^3 + ax + b over F_p.
// Returns error if:
// - p is not a prime greater than 3
// - a or b is not reduced into [0, p)
// - the curve is singular
func ValidateCurveParams(a, b, p *big.Int) error {
	if err := ValidateModulus(p); err != nil {
		return err
	}
	if err := ValidateReduced(a, p); err != nil {
		return fmt.Errorf("coefficient a: %w", err)
	}
	if err := ValidateReduced(b, p); err != nil {
		return fmt.Errorf("coefficient b: %w", err)
	}

	// 4a^3 + 27b^2 mod p
	d := new(big.Int).Exp(a, three, p)
	d.Mul(d, four)
	b2 := new(big.Int).Mul(b, b)
	b2.Mul(b2, twentySeven)
	d.Add(d, b2)
	d.Mod(d, p)
	if d.Sign() == 0 {
		return fmt.Errorf("%w: a=%s b=%s p=%s", ErrSingularCurve, a, b, p)
	}

	return nil
}
