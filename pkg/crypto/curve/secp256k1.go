package curve

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// newSecp256k1 builds secp256k1 (y^2 = x^3 + 7) from the btcec parameters
func newSecp256k1() (*Weierstrass, error) {
	params := btcec.S256().Params()

	return NewWeierstrassFromParams(&CurveParams{
		Name:    "secp256k1",
		A:       new(big.Int),
		B:       params.B,
		P:       params.P,
		N:       params.N,
		Gx:      params.Gx,
		Gy:      params.Gy,
		BitSize: params.BitSize,
	})
}
