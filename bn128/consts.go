// Package bn128 implements the field, scalar, and group-point arithmetic
// for the BN128 (alt_bn128) curve used by the AZTEC validator contracts.
//
// Two modular contexts are kept as distinct types on purpose: Scalar is
// reduced mod N (the group order, used for note values, blinding factors
// and challenges) and FieldElement is reduced mod P (the base field, used
// for point coordinates). Mixing the two is a compile error, not a
// runtime one.
package bn128

import "math/big"

var (
	// P is the BN128 base field modulus. Point coordinates live in [0, P).
	P, _ = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)

	// N is the BN128 group order. Scalars (note values, viewing keys,
	// blinding factors, challenges, responses) live in [0, N).
	N, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

	// curveB is the BN128 short-Weierstrass coefficient: y^2 = x^3 + curveB (mod P).
	curveB = big.NewInt(3)

	// sqrtExp is the exponent used to compute square roots mod P via
	// Tonelli-Shanks' p=3(mod 4) shortcut: sqrt(a) = a^((P+1)/4) mod P.
	sqrtExp = new(big.Int).Div(new(big.Int).Add(P, big.NewInt(1)), big.NewInt(4))
)

// KMax is the largest value a note may commit to: 2^32 - 1.
var KMax = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 32), big.NewInt(1))

func newBig(v int64) *big.Int {
	return big.NewInt(v)
}
