// Package main walks through the group law on a small curve and on secp256k1
package main

import (
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/Caqil/weierstrass/pkg/crypto/curve"
	"github.com/Caqil/weierstrass/pkg/logger"
)

func main() {
	logger.SetGlobalLogger(logger.New(&logger.Config{
		Level:  "debug",
		Output: os.Stderr,
		Pretty: true,
	}))

	fmt.Println("=== Weierstrass Arithmetic: y^2 = x^3 + 2x + 2 mod 17 ===")

	c, err := curve.NewWeierstrassFromParams(&curve.CurveParams{
		Name: "toy17",
		A:    big.NewInt(2),
		B:    big.NewInt(2),
		P:    big.NewInt(17),
		N:    big.NewInt(19),
		Gx:   big.NewInt(5),
		Gy:   big.NewInt(1),
	})
	if err != nil {
		log.Fatalf("Failed to create curve: %v", err)
	}
	if err := c.Validate(); err != nil {
		log.Fatalf("Curve parameters rejected: %v", err)
	}

	// Phase 1: every multiple of the generator
	fmt.Printf("\nPhase 1: Multiples of G = %s\n", c.Generator())
	for k := int64(1); k <= c.Order().Int64(); k++ {
		p, err := c.ScalarBaseMult(big.NewInt(k))
		if err != nil {
			log.Fatalf("%d*G failed: %v", k, err)
		}
		fmt.Printf("  %2d*G = %s\n", k, p)
	}

	// Phase 2: individual group operations
	fmt.Println("\nPhase 2: Group law...")
	g := c.Generator()
	doubled, err := c.Double(g)
	if err != nil {
		log.Fatalf("Double failed: %v", err)
	}
	fmt.Printf("  2*G       = %s\n", doubled)

	sum, err := c.Add(doubled, g)
	if err != nil {
		log.Fatalf("Add failed: %v", err)
	}
	fmt.Printf("  2*G + G   = %s\n", sum)

	neg, err := c.Negate(g)
	if err != nil {
		log.Fatalf("Negate failed: %v", err)
	}
	id, err := c.Add(g, neg)
	if err != nil {
		log.Fatalf("Add failed: %v", err)
	}
	fmt.Printf("  G + (-G)  = %s\n", id)

	// Phase 3: contract violations are errors, logged at debug level
	fmt.Println("\nPhase 3: Contract violations...")
	if _, err := c.Add(g, g); err != nil {
		fmt.Printf("  G + G     -> %v\n", err)
	}
	if _, err := c.ScalarBaseMult(big.NewInt(21)); err != nil {
		fmt.Printf("  21*G      -> %v\n", err)
	}

	// Phase 4: a real curve
	fmt.Println("\nPhase 4: secp256k1...")
	k1, err := curve.NewCurve(curve.Secp256k1)
	if err != nil {
		log.Fatalf("Failed to create secp256k1: %v", err)
	}
	pub, err := k1.ScalarBaseMult(big.NewInt(0xc0ffee))
	if err != nil {
		log.Fatalf("ScalarBaseMult failed: %v", err)
	}
	fmt.Printf("  0xc0ffee*G = (%x, %x)\n", pub.X, pub.Y)
}
