package curve

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/weierstrass/pkg/logger"
)

func TestScalarMult(t *testing.T) {
	c := toyCurve(t)
	g := pt(5, 1)

	tests := []struct {
		k        int64
		expected *Point
	}{
		{2, pt(6, 3)},
		{10, pt(7, 11)},
		{19, Identity()},
	}

	for _, tt := range tests {
		res, err := c.ScalarMult(g, big.NewInt(tt.k))
		require.NoError(t, err, "k=%d", tt.k)
		assertPoint(t, tt.expected, res, "k=%d", tt.k)
	}
}

func TestScalarMultMatchesGroupTable(t *testing.T) {
	c := toyCurve(t)
	g := pt(5, 1)
	n := int64(len(toyMultiples))

	for k := int64(1); k <= 41; k++ {
		if k == 21 {
			continue
		}
		res, err := c.ScalarMult(g, big.NewInt(k))
		require.NoError(t, err, "k=%d", k)
		assertPoint(t, toyMultiples[k%n], res, "k=%d", k)
	}
}

func TestScalarMultByTwoIsDouble(t *testing.T) {
	c := toyCurve(t)

	for k := 1; k < len(toyMultiples); k++ {
		doubled, err := c.Double(toyMultiples[k])
		require.NoError(t, err)
		res, err := c.ScalarMult(toyMultiples[k], big.NewInt(2))
		require.NoError(t, err)
		assertPoint(t, doubled, res, "k=%d", k)
	}
}

func TestScalarMultByOne(t *testing.T) {
	c := toyCurve(t)
	g := pt(5, 1)

	res, err := c.ScalarMult(g, big.NewInt(1))
	require.NoError(t, err)
	assertPoint(t, g, res)
	assert.NotSame(t, g, res)
}

func TestScalarMultOrderClosure(t *testing.T) {
	c := toyCurve(t)

	for k := 1; k < len(toyMultiples); k++ {
		res, err := c.ScalarMult(toyMultiples[k], c.Order())
		require.NoError(t, err, "k=%d", k)
		assert.True(t, res.IsIdentity(), "k=%d", k)
	}
}

func TestScalarMultIdentity(t *testing.T) {
	c := toyCurve(t)

	res, err := c.ScalarMult(Identity(), big.NewInt(7))
	require.NoError(t, err)
	assert.True(t, res.IsIdentity())
}

func TestScalarMultInvalid(t *testing.T) {
	c := toyCurve(t)
	g := pt(5, 1)

	_, err := c.ScalarMult(g, big.NewInt(0))
	assert.ErrorIs(t, err, ErrScalarZero)

	_, err = c.ScalarMult(g, big.NewInt(-3))
	assert.ErrorIs(t, err, ErrInvalidScalar)

	_, err = c.ScalarMult(g, nil)
	assert.ErrorIs(t, err, ErrInvalidScalar)

	_, err = c.ScalarMult(pt(5, 2), big.NewInt(3))
	assert.ErrorIs(t, err, ErrPointNotOnCurve)

	_, err = c.ScalarMult(nil, big.NewInt(3))
	assert.ErrorIs(t, err, ErrNilPoint)
}

func TestScalarMultEqualOperandGap(t *testing.T) {
	c := toyCurve(t)
	g := pt(5, 1)

	// 21 = 10101b: the prefix 1010b doubles to 20*G = G before adding G
	for _, k := range []int64{21, 42, 43} {
		_, err := c.ScalarMult(g, big.NewInt(k))
		assert.ErrorIs(t, err, ErrEqualOperands, "k=%d", k)
	}
}

func TestScalarMultTwoTorsionGap(t *testing.T) {
	c, err := NewWeierstrass(big.NewInt(1), big.NewInt(0), big.NewInt(23))
	require.NoError(t, err)

	_, err = c.ScalarMult(pt(0, 0), big.NewInt(2))
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestScalarMultFailureDoesNotLogScalar(t *testing.T) {
	var buf bytes.Buffer
	c := toyCurve(t).WithLogger(logger.New(&logger.Config{Level: "debug", Output: &buf}))

	_, err := c.ScalarMult(pt(5, 1), big.NewInt(21))
	require.ErrorIs(t, err, ErrEqualOperands)

	out := buf.String()
	assert.Contains(t, out, `"scalar_bits":5`)
	assert.Contains(t, out, "scalar multiplication aborted")
}

func TestScalarBaseMult(t *testing.T) {
	c := toyCurve(t)

	res, err := c.ScalarBaseMult(big.NewInt(10))
	require.NoError(t, err)
	assertPoint(t, pt(7, 11), res)

	anon, err := NewWeierstrass(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	require.NoError(t, err)
	_, err = anon.ScalarBaseMult(big.NewInt(10))
	assert.ErrorIs(t, err, ErrNoGenerator)
}
