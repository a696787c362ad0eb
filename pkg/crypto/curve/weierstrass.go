package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/weierstrass/internal/security"
	"github.com/Caqil/weierstrass/pkg/crypto/field"
	"github.com/Caqil/weierstrass/pkg/logger"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Weierstrass is a curve y^2 = x^3 + ax + b over F_p.
// It is immutable once constructed.
type Weierstrass struct {
	params *CurveParams
	a      *big.Int
	b      *big.Int
	p      *big.Int
	logger *logger.Logger
}

// NewWeierstrass creates the curve y^2 = x^3 + ax + b mod p.
// a and b are reduced modulo p. p must be prime for inversion to be
// correct; this is not checked here, see Validate.
func NewWeierstrass(a, b, p *big.Int) (*Weierstrass, error) {
	return NewWeierstrassFromParams(&CurveParams{A: a, B: b, P: p})
}

// NewWeierstrassFromParams creates a curve from a full parameter set,
// including an optional generator and its order
func NewWeierstrassFromParams(params *CurveParams) (*Weierstrass, error) {
	if params == nil || params.A == nil || params.B == nil || params.P == nil {
		return nil, fmt.Errorf("%w: a, b and p are required", ErrInvalidCurve)
	}
	if params.P.Sign() <= 0 {
		return nil, fmt.Errorf("%w: p=%s", ErrInvalidCurve, params.P)
	}
	if (params.Gx == nil) != (params.Gy == nil) {
		return nil, fmt.Errorf("%w: generator needs both coordinates", ErrInvalidCurve)
	}

	cp := params.clone()
	cp.A.Mod(cp.A, cp.P)
	cp.B.Mod(cp.B, cp.P)

	c := &Weierstrass{
		params: cp,
		a:      cp.A,
		b:      cp.B,
		p:      cp.P,
	}

	if g := c.Generator(); g != nil && !c.IsOnCurve(g) {
		return nil, fmt.Errorf("%w: generator %s is not on the curve", ErrInvalidCurve, g)
	}

	return c, nil
}

// WithLogger returns a copy of the curve that reports rejected operations
// to l at debug level
func (c *Weierstrass) WithLogger(l *logger.Logger) *Weierstrass {
	cc := *c
	cc.logger = l
	return &cc
}

func (c *Weierstrass) log() *logger.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.Global()
}

// Params returns a copy of the curve parameters
func (c *Weierstrass) Params() *CurveParams {
	return c.params.clone()
}

// Name returns the curve name, empty for anonymous curves
func (c *Weierstrass) Name() string {
	return c.params.Name
}

// A returns the linear coefficient
func (c *Weierstrass) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns the constant coefficient
func (c *Weierstrass) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// P returns the field modulus
func (c *Weierstrass) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// Order returns the order of the generator, or nil if unknown
func (c *Weierstrass) Order() *big.Int {
	return copyInt(c.params.N)
}

// Generator returns the base point, or nil if the curve has none
func (c *Weierstrass) Generator() *Point {
	if c.params.Gx == nil {
		return nil
	}
	return NewPoint(c.params.Gx, c.params.Gy)
}

// Validate checks that p is prime, the coefficients are reduced and the
// curve is non-singular. Construction does not call it.
func (c *Weierstrass) Validate() error {
	if err := security.ValidateCurveParams(c.a, c.b, c.p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCurve, err)
	}
	return nil
}

// IsOnCurve verifies y^2 = x^3 + ax + b mod p.
// The identity is always on the curve; affine coordinates must be reduced
// into [0, p).
func (c *Weierstrass) IsOnCurve(pt *Point) bool {
	if pt == nil {
		return false
	}
	if pt.IsIdentity() {
		return true
	}
	if security.ValidateReduced(pt.X, c.p) != nil || security.ValidateReduced(pt.Y, c.p) != nil {
		return false
	}

	y2 := field.Exp(pt.Y, two, c.p)
	x3 := field.Exp(pt.X, three, c.p)
	ax := field.Multiply(c.a, pt.X, c.p)
	rhs := field.Add(field.Add(x3, ax, c.p), c.b, c.p)

	return y2.Cmp(rhs) == 0
}

// Add computes p1 + p2 for distinct points.
// Equal operands are rejected with ErrEqualOperands, including two
// identities; use Double instead.
func (c *Weierstrass) Add(p1, p2 *Point) (*Point, error) {
	if err := c.checkOperand("add", p1); err != nil {
		return nil, err
	}
	if err := c.checkOperand("add", p2); err != nil {
		return nil, err
	}
	if p1.IsEqual(p2) {
		return nil, c.reject("add", fmt.Errorf("%w: %s", ErrEqualOperands, p1), p1)
	}

	if p1.IsIdentity() {
		return p2.Clone(), nil
	}
	if p2.IsIdentity() {
		return p1.Clone(), nil
	}

	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y

	// Vertical reflections sum to the identity
	if x1.Cmp(x2) == 0 && field.Add(y1, y2, c.p).Sign() == 0 {
		return Identity(), nil
	}

	// s = (y2 - y1) / (x2 - x1)
	// x3 = s^2 - x1 - x2
	// y3 = s(x1 - x3) - y1
	f := c.expr()
	s := f.div(f.sub(y2, y1), f.sub(x2, x1))
	x3 := f.sub(f.sub(f.sq(s), x1), x2)
	y3 := f.sub(f.mul(s, f.sub(x1, x3)), y1)
	if f.err != nil {
		return nil, c.reject("add", f.err, p1, p2)
	}

	return &Point{X: x3, Y: y3}, nil
}

// Double computes 2*pt.
// A point with y = 0 has a vertical tangent and is rejected with
// ErrZeroDenominator.
func (c *Weierstrass) Double(pt *Point) (*Point, error) {
	if err := c.checkOperand("double", pt); err != nil {
		return nil, err
	}
	if pt.IsIdentity() {
		return Identity(), nil
	}

	x1, y1 := pt.X, pt.Y
	if y1.Sign() == 0 {
		return nil, c.reject("double", fmt.Errorf("%w: %s", ErrZeroDenominator, pt), pt)
	}

	// s = (3x1^2 + a) / 2y1
	// x2 = s^2 - 2x1
	// y2 = s(x1 - x2) - y1
	f := c.expr()
	s := f.div(f.add(f.mul(three, f.sq(x1)), c.a), f.mul(two, y1))
	x2 := f.sub(f.sq(s), f.mul(two, x1))
	y2 := f.sub(f.mul(s, f.sub(x1, x2)), y1)
	if f.err != nil {
		return nil, c.reject("double", f.err, pt)
	}

	return &Point{X: x2, Y: y2}, nil
}

// Negate computes -pt, the reflection (x, p - y)
func (c *Weierstrass) Negate(pt *Point) (*Point, error) {
	if err := c.checkOperand("negate", pt); err != nil {
		return nil, err
	}
	if pt.IsIdentity() {
		return Identity(), nil
	}

	y, err := field.InverseAddition(pt.Y, c.p)
	if err != nil {
		return nil, c.reject("negate", err, pt)
	}

	return &Point{X: new(big.Int).Set(pt.X), Y: y}, nil
}

func (c *Weierstrass) checkOperand(op string, pt *Point) error {
	if pt == nil {
		return c.reject(op, ErrNilPoint)
	}
	if !c.IsOnCurve(pt) {
		return c.reject(op, fmt.Errorf("%w: %s", ErrPointNotOnCurve, pt), pt)
	}
	return nil
}

func (c *Weierstrass) reject(op string, err error, pts ...*Point) error {
	ev := c.log().DebugEvent().Str("curve", c.params.Name).Str("op", op)
	for i, pt := range pts {
		ev = ev.Stringer(fmt.Sprintf("operand%d", i+1), pt)
	}
	ev.Err(err).Msg("curve operation rejected")
	return err
}

func (c *Weierstrass) expr() *fieldExpr {
	return &fieldExpr{p: c.p}
}

// fieldExpr evaluates formulas over F_p and keeps the first error, so the
// group law formulas read the way they are written on paper.
type fieldExpr struct {
	p   *big.Int
	err error
}

func (f *fieldExpr) add(x, y *big.Int) *big.Int {
	return field.Add(x, y, f.p)
}

func (f *fieldExpr) mul(x, y *big.Int) *big.Int {
	return field.Multiply(x, y, f.p)
}

func (f *fieldExpr) sq(x *big.Int) *big.Int {
	return field.Exp(x, two, f.p)
}

func (f *fieldExpr) sub(x, y *big.Int) *big.Int {
	if f.err != nil {
		return new(big.Int)
	}
	r, err := field.Subtract(x, y, f.p)
	if err != nil {
		f.err = err
		return new(big.Int)
	}
	return r
}

func (f *fieldExpr) div(x, y *big.Int) *big.Int {
	if f.err != nil {
		return new(big.Int)
	}
	r, err := field.Divide(x, y, f.p)
	if err != nil {
		f.err = err
		return new(big.Int)
	}
	return r
}
