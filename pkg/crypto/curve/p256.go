package curve

import (
	"crypto/elliptic"
	"math/big"
)

// newP256 builds NIST P-256 from the standard library parameters.
// crypto/elliptic fixes a = -3, which is stored reduced as p - 3.
func newP256() (*Weierstrass, error) {
	params := elliptic.P256().Params()

	return NewWeierstrassFromParams(&CurveParams{
		Name:    "P-256",
		A:       new(big.Int).Sub(params.P, three),
		B:       params.B,
		P:       params.P,
		N:       params.N,
		Gx:      params.Gx,
		Gy:      params.Gy,
		BitSize: params.BitSize,
	})
}
