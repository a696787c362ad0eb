// Package curve implements the group law of short Weierstrass curves
// y^2 = x^3 + ax + b over a prime field F_p.
//
// Every coordinate computation goes through package field with the curve
// modulus passed explicitly. Points and curves are immutable: operations
// return new values and never modify their arguments, so a *Weierstrass may
// be shared between goroutines without locking.
//
// Contract violations (operands off the curve, equal operands to Add,
// unreduced coordinates) are reported as wrapped sentinel errors. They point
// at a bug in the caller, not at a condition to retry.
package curve

import (
	"fmt"
	"math/big"
)

// CurveType represents a named curve preset
type CurveType int

const (
	// Secp256k1 is the Bitcoin/Ethereum curve
	Secp256k1 CurveType = iota
	// P256 is the NIST P-256 curve
	P256
)

// Point is a point on a Weierstrass curve. The identity element (point at
// infinity) has nil coordinates.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint creates an affine point from its coordinates.
// The coordinates are copied.
func NewPoint(x, y *big.Int) *Point {
	return &Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

// Identity returns the point at infinity
func Identity() *Point {
	return &Point{}
}

// IsIdentity checks if point is the point at infinity
func (p *Point) IsIdentity() bool {
	return p.X == nil && p.Y == nil
}

// IsEqual checks if two points are equal
func (p *Point) IsEqual(other *Point) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.IsIdentity() || other.IsIdentity() {
		return p.IsIdentity() && other.IsIdentity()
	}
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// Clone creates a deep copy of the point
func (p *Point) Clone() *Point {
	if p == nil {
		return nil
	}
	if p.IsIdentity() {
		return Identity()
	}
	return NewPoint(p.X, p.Y)
}

func (p *Point) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.IsIdentity() {
		return "Identity"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// CurveParams contains the parameters of a curve y^2 = x^3 + ax + b
type CurveParams struct {
	// Name of the curve
	Name string

	// A, B are the curve equation coefficients
	A, B *big.Int

	// P is the prime field modulus
	P *big.Int

	// N is the order of the base point (optional)
	N *big.Int

	// Gx, Gy are the coordinates of the generator (optional)
	Gx, Gy *big.Int

	// BitSize is the size of the field in bits
	BitSize int
}

func (cp *CurveParams) clone() *CurveParams {
	out := &CurveParams{
		Name:    cp.Name,
		A:       copyInt(cp.A),
		B:       copyInt(cp.B),
		P:       copyInt(cp.P),
		N:       copyInt(cp.N),
		Gx:      copyInt(cp.Gx),
		Gy:      copyInt(cp.Gy),
		BitSize: cp.BitSize,
	}
	if out.BitSize == 0 && out.P != nil {
		out.BitSize = out.P.BitLen()
	}
	return out
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

// NewCurve creates a curve instance for a named preset
func NewCurve(curveType CurveType) (*Weierstrass, error) {
	switch curveType {
	case Secp256k1:
		return newSecp256k1()
	case P256:
		return newP256()
	default:
		return nil, ErrUnsupportedCurve
	}
}
