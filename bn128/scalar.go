package bn128

import (
	"math/big"

	"github.com/tezansahu/aztec-prove/aztecerror"
)

// Scalar is an integer mod N: note values, viewing keys, blinding
// factors, challenges and sigma-protocol responses all live here.
type Scalar struct {
	v *big.Int
}

// ScalarZero is the additive identity.
func ScalarZero() Scalar { return Scalar{v: big.NewInt(0)} }

// NewScalar reduces v mod N.
func NewScalar(v *big.Int) Scalar {
	return Scalar{v: new(big.Int).Mod(v, N)}
}

// ScalarFromUint64 reduces a uint64 mod N.
func ScalarFromUint64(v uint64) Scalar {
	return NewScalar(new(big.Int).SetUint64(v))
}

// ScalarFromBytes parses a 32-byte big-endian encoding. Returns
// SCALAR_TOO_BIG if the value is not canonically reduced mod N.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, aztecerror.New(aztecerror.ScalarTooBig, "scalar must be 32 bytes")
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(N) >= 0 {
		return Scalar{}, aztecerror.New(aztecerror.ScalarTooBig, "scalar out of range mod n")
	}
	return Scalar{v: v}, nil
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	b := s.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// BigInt returns a defensive copy of the underlying integer.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether s and o represent the same residue mod N.
func (s Scalar) Equal(o Scalar) bool {
	return s.v.Cmp(o.v) == 0
}

// Add returns s + o mod N.
func (s Scalar) Add(o Scalar) Scalar {
	return NewScalar(new(big.Int).Add(s.v, o.v))
}

// Sub returns s - o mod N.
func (s Scalar) Sub(o Scalar) Scalar {
	return NewScalar(new(big.Int).Sub(s.v, o.v))
}

// Mul returns s * o mod N.
func (s Scalar) Mul(o Scalar) Scalar {
	return NewScalar(new(big.Int).Mul(s.v, o.v))
}

// Neg returns -s mod N.
func (s Scalar) Neg() Scalar {
	return NewScalar(new(big.Int).Neg(s.v))
}

// Inverse returns the multiplicative inverse of s mod N. Panics if s is
// zero; callers must check IsZero first, as a zero viewing key or
// blinding factor is already a protocol violation by the time inversion
// is attempted.
func (s Scalar) Inverse() Scalar {
	if s.IsZero() {
		panic("bn128: inverse of zero scalar")
	}
	return Scalar{v: new(big.Int).ModInverse(s.v, N)}
}

// Zeroize overwrites the scalar's backing integer. Best-effort: Go's
// garbage collector may have already copied the value elsewhere, but
// this denies the easy, obvious copy once a blinding factor is consumed.
func (s *Scalar) Zeroize() {
	if s.v != nil {
		s.v.SetInt64(0)
	}
}
