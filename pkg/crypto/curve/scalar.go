package curve

import (
	"fmt"
	"math/big"
)

// ScalarMult computes k*pt with left-to-right double-and-add.
//
// The accumulator starts at pt, which consumes the top bit of k; each
// remaining bit doubles the accumulator and adds pt when the bit is set.
// k must be at least 1.
//
// Because Add rejects equal operands, a scalar whose prefix reaches
// pt again before the last bits (k = 21 for a point of order 19) fails with ErrEqualOperands instead of returning a point.
// Doubling a point with y = 0 fails with ErrZeroDenominator.
func (c *Weierstrass) ScalarMult(pt *Point, k *big.Int) (*Point, error) {
	if k == nil || k.Sign() < 0 {
		return nil, c.reject("scalar_mult", ErrInvalidScalar)
	}
	if k.Sign() == 0 {
		return nil, c.reject("scalar_mult", ErrScalarZero)
	}
	if err := c.checkOperand("scalar_mult", pt); err != nil {
		return nil, err
	}
	if pt.IsIdentity() {
		return Identity(), nil
	}

	acc := pt.Clone()
	var err error
	for i := k.BitLen() - 2; i >= 0; i-- {
		acc, err = c.Double(acc)
		if err != nil {
			return nil, c.scalarFailure(k, i, err)
		}
		if k.Bit(i) == 1 {
			acc, err = c.Add(acc, pt)
			if err != nil {
				return nil, c.scalarFailure(k, i, err)
			}
		}
	}

	return acc, nil
}

// ScalarBaseMult computes k*G where G is the generator
func (c *Weierstrass) ScalarBaseMult(k *big.Int) (*Point, error) {
	g := c.Generator()
	if g == nil {
		return nil, ErrNoGenerator
	}
	return c.ScalarMult(g, k)
}

// scalarFailure never logs k itself, only its size and the failing bit
func (c *Weierstrass) scalarFailure(k *big.Int, bit int, err error) error {
	c.log().DebugEvent().
		Str("curve", c.params.Name).
		Int("scalar_bits", k.BitLen()).
		Int("bit", bit).
		Err(err).
		Msg("scalar multiplication aborted")
	return fmt.Errorf("scalar multiplication at bit %d: %w", bit, err)
}
