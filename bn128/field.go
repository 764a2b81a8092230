package bn128

import (
	"math/big"

	"github.com/tezansahu/aztec-prove/aztecerror"
)

// FieldElement is an integer mod P: point coordinates live here. Kept
// distinct from Scalar so the two modular contexts can never be added
// together by mistake.
type FieldElement struct {
	v *big.Int
}

// FieldZero is the additive identity of the base field.
func FieldZero() FieldElement { return FieldElement{v: big.NewInt(0)} }

// NewFieldElement reduces v mod P.
func NewFieldElement(v *big.Int) FieldElement {
	return FieldElement{v: new(big.Int).Mod(v, P)}
}

// FieldElementFromBytes parses a 32-byte big-endian encoding. Returns
// NOT_ON_CURVE if the value is not canonically reduced mod P (a
// coordinate this large cannot belong to any valid point).
func FieldElementFromBytes(b []byte) (FieldElement, error) {
	if len(b) != 32 {
		return FieldElement{}, aztecerror.New(aztecerror.NotOnCurve, "coordinate must be 32 bytes")
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(P) >= 0 {
		return FieldElement{}, aztecerror.New(aztecerror.NotOnCurve, "coordinate out of range mod p")
	}
	return FieldElement{v: v}, nil
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (f FieldElement) Bytes() [32]byte {
	var out [32]byte
	b := f.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// BigInt returns a defensive copy of the underlying integer.
func (f FieldElement) BigInt() *big.Int {
	return new(big.Int).Set(f.v)
}

// IsZero reports whether f is the additive identity.
func (f FieldElement) IsZero() bool {
	return f.v.Sign() == 0
}

// Equal reports whether f and o represent the same residue mod P.
func (f FieldElement) Equal(o FieldElement) bool {
	return f.v.Cmp(o.v) == 0
}

// Add returns f + o mod P.
func (f FieldElement) Add(o FieldElement) FieldElement {
	return NewFieldElement(new(big.Int).Add(f.v, o.v))
}

// Sub returns f - o mod P.
func (f FieldElement) Sub(o FieldElement) FieldElement {
	return NewFieldElement(new(big.Int).Sub(f.v, o.v))
}

// Mul returns f * o mod P.
func (f FieldElement) Mul(o FieldElement) FieldElement {
	return NewFieldElement(new(big.Int).Mul(f.v, o.v))
}

// Square returns f * f mod P.
func (f FieldElement) Square() FieldElement {
	return f.Mul(f)
}

// Neg returns -f mod P.
func (f FieldElement) Neg() FieldElement {
	return NewFieldElement(new(big.Int).Neg(f.v))
}

// Inverse returns the multiplicative inverse of f mod P.
func (f FieldElement) Inverse() FieldElement {
	if f.IsZero() {
		panic("bn128: inverse of zero field element")
	}
	return FieldElement{v: new(big.Int).ModInverse(f.v, P)}
}

// sqrt returns a square root of f mod P, and whether one exists. P = 3
// (mod 4) for BN128, so sqrt(a) = a^((P+1)/4) mod P when a is a quadratic
// residue; the result is verified by squaring it back.
func (f FieldElement) sqrt() (FieldElement, bool) {
	if f.IsZero() {
		return FieldZero(), true
	}
	cand := FieldElement{v: new(big.Int).Exp(f.v, sqrtExp, P)}
	if cand.Square().Equal(f) {
		return cand, true
	}
	return FieldElement{}, false
}

// isOdd reports whether the canonical representative is odd, used for
// point-compression sign bits.
func (f FieldElement) isOdd() bool {
	return f.v.Bit(0) == 1
}
