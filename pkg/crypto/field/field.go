// Package field provides modular arithmetic over a prime field.
// The modulus is passed explicitly to every operation and never stored,
// so the field modulus and a group order cannot be mixed up silently.
// All results are reduced into [0, p) and arguments are never modified.
package field

import (
	"fmt"
	"math/big"
)

var two = big.NewInt(2)

// Add computes (c + d) mod p
func Add(c, d, p *big.Int) *big.Int {
	r := new(big.Int).Add(c, d)
	return r.Mod(r, p)
}

// Multiply computes (c * d) mod p
func Multiply(c, d, p *big.Int) *big.Int {
	r := new(big.Int).Mul(c, d)
	return r.Mod(r, p)
}

// Exp computes c^e mod p
func Exp(c, e, p *big.Int) *big.Int {
	return new(big.Int).Exp(c, e, p)
}

// InverseAddition computes -c mod p.
// c must already be reduced; an operand >= p means something upstream
// produced an unreduced value.
func InverseAddition(c, p *big.Int) (*big.Int, error) {
	if c.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: c=%s p=%s", ErrOperandExceedsModulus, c, p)
	}
	r := new(big.Int).Sub(p, c)
	return r.Mod(r, p), nil
}

// Subtract computes (c - d) mod p as c + (-d)
func Subtract(c, d, p *big.Int) (*big.Int, error) {
	negD, err := InverseAddition(d, p)
	if err != nil {
		return nil, err
	}
	return Add(c, negD, p), nil
}

// InverseMultiplication computes c^-1 mod p using Fermat's little theorem,
// c^(p-2) mod p.
//
// The result is only meaningful when p is prime; primality is not checked.
func InverseMultiplication(c, p *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(c, p).Sign() == 0 {
		return nil, fmt.Errorf("%w: c=%s p=%s", ErrNotInvertible, c, p)
	}
	e := new(big.Int).Sub(p, two)
	return Exp(c, e, p), nil
}

// Divide computes c * d^-1 mod p
func Divide(c, d, p *big.Int) (*big.Int, error) {
	dInv, err := InverseMultiplication(d, p)
	if err != nil {
		return nil, err
	}
	return Multiply(c, dInv, p), nil
}
