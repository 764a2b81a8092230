package bn128

import (
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// RandomScalar draws a cryptographically strong scalar in [1, N) by
// reject-sampling 32 random bytes until the result is both canonically
// reduced and non-zero. Zero is excluded because it is never a valid
// blinding factor, viewing key, or nonce.
func RandomScalar(rng io.Reader) (Scalar, error) {
	buf := make([]byte, 32)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Scalar{}, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Sign() == 0 || v.Cmp(N) >= 0 {
			continue
		}
		return Scalar{v: v}, nil
	}
}

// HashToPoint deterministically derives a curve point from seed using
// try-and-increment: hash the seed with an incrementing counter until
// the digest, reduced mod P, is a valid X coordinate with a square root,
// then take the even-Y root. Used to derive the CRS generator h and
// per-note generator gamma from a fixed or random seed.
func HashToPoint(seed []byte) (Point, error) {
	for counter := uint32(0); ; counter++ {
		h := sha3.NewLegacyKeccak256()
		h.Write(seed)
		h.Write([]byte{byte(counter >> 24), byte(counter >> 16), byte(counter >> 8), byte(counter)})
		digest := h.Sum(nil)

		x := NewFieldElement(new(big.Int).SetBytes(digest))
		rhs := x.Square().Mul(x).Add(NewFieldElement(curveB))
		y, ok := rhs.sqrt()
		if !ok {
			continue
		}
		if y.isOdd() {
			y = y.Neg()
		}
		p := Point{X: x, Y: y}
		if p.IsIdentity() {
			continue
		}
		return p, nil
	}
}

// RandomPoint draws a point with an unknown discrete log relative to any
// other generator by hashing fresh randomness into HashToPoint. Used to
// generate a note's gamma ("random-on-curve" per spec 4.C).
func RandomPoint(rng io.Reader) (Point, error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return Point{}, err
	}
	return HashToPoint(seed)
}
