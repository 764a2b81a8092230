package bn128

import (
	"github.com/tezansahu/aztec-prove/aztecerror"
)

// Point is an affine BN128 point. The zero value (X=0, Y=0) represents
// the point at infinity by convention; every proof-facing operation
// rejects it (see IsOnCurve), matching spec's "non-identity by invariant".
type Point struct {
	X, Y FieldElement
}

// NewPoint builds a point from coordinates without validating it.
// Callers that consume untrusted input must call IsOnCurve/IsIdentity
// themselves (proof.ParseInputs does this for every note).
func NewPoint(x, y FieldElement) Point {
	return Point{X: x, Y: y}
}

// Identity returns the point-at-infinity sentinel.
func Identity() Point {
	return Point{X: FieldZero(), Y: FieldZero()}
}

// IsIdentity reports whether p is the point-at-infinity sentinel (0, 0).
func (p Point) IsIdentity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + 3 (mod P) and is not
// the identity. A curve point is only valid for proof construction when
// both hold.
func (p Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return false
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(NewFieldElement(curveB))
	return lhs.Equal(rhs)
}

// Equal reports whether p and o are the same affine point.
func (p Point) Equal(o Point) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// Neg returns the additive inverse of p.
func (p Point) Neg() Point {
	if p.IsIdentity() {
		return p
	}
	return Point{X: p.X, Y: p.Y.Neg()}
}

// Add returns p + q using the standard affine chord-and-tangent rule.
func (p Point) Add(q Point) Point {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.Double()
		}
		// p == -q
		return Identity()
	}
	// lambda = (q.y - p.y) / (q.x - p.x)
	lambda := q.Y.Sub(p.Y).Mul(q.X.Sub(p.X).Inverse())
	x3 := lambda.Square().Sub(p.X).Sub(q.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3}
}

// Double returns p + p.
func (p Point) Double() Point {
	if p.IsIdentity() || p.Y.IsZero() {
		return Identity()
	}
	// lambda = (3*x^2) / (2*y)
	three := NewFieldElement(bigThree)
	two := NewFieldElement(bigTwo)
	lambda := three.Mul(p.X.Square()).Mul(two.Mul(p.Y).Inverse())
	x3 := lambda.Square().Sub(p.X).Sub(p.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3}
}

// ScalarMul returns s*p via double-and-add.
func (p Point) ScalarMul(s Scalar) Point {
	result := Identity()
	base := p
	k := s.BigInt()
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(base)
		}
		base = base.Double()
	}
	return result
}

// Marshal returns the 64-byte uncompressed encoding: X || Y, each
// 32-byte big-endian.
func (p Point) Marshal() [64]byte {
	var out [64]byte
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[0:32], x[:])
	copy(out[32:64], y[:])
	return out
}

// Unmarshal parses a 64-byte uncompressed encoding and validates that
// the resulting point is on-curve and non-identity.
func Unmarshal(b []byte) (Point, error) {
	if len(b) != 64 {
		return Point{}, aztecerror.New(aztecerror.NotOnCurve, "point encoding must be 64 bytes")
	}
	x, err := FieldElementFromBytes(b[0:32])
	if err != nil {
		return Point{}, err
	}
	y, err := FieldElementFromBytes(b[32:64])
	if err != nil {
		return Point{}, err
	}
	p := Point{X: x, Y: y}
	if p.IsIdentity() {
		return Point{}, aztecerror.New(aztecerror.PointAtInfinity, "point is the identity")
	}
	if !p.IsOnCurve() {
		return Point{}, aztecerror.New(aztecerror.NotOnCurve, "point does not satisfy the curve equation")
	}
	return p, nil
}

// Compress returns the 33-byte compressed encoding used for off-chain
// note transmission: a sign byte (0x02 even-y, 0x03 odd-y) followed by
// the 32-byte X coordinate.
func (p Point) Compress() [33]byte {
	var out [33]byte
	if p.Y.isOdd() {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	x := p.X.Bytes()
	copy(out[1:], x[:])
	return out
}

// Decompress recovers the full point from its 33-byte compressed form,
// choosing the Y root matching the encoded sign bit, and validates it is
// on-curve and non-identity.
func Decompress(b []byte) (Point, error) {
	if len(b) != 33 {
		return Point{}, aztecerror.New(aztecerror.NotOnCurve, "compressed point must be 33 bytes")
	}
	sign := b[0]
	if sign != 0x02 && sign != 0x03 {
		return Point{}, aztecerror.New(aztecerror.NotOnCurve, "invalid compressed point sign byte")
	}
	x, err := FieldElementFromBytes(b[1:])
	if err != nil {
		return Point{}, err
	}
	rhs := x.Square().Mul(x).Add(NewFieldElement(curveB))
	y, ok := rhs.sqrt()
	if !ok {
		return Point{}, aztecerror.New(aztecerror.NotOnCurve, "x has no corresponding y on curve")
	}
	if y.isOdd() != (sign == 0x03) {
		y = y.Neg()
	}
	p := Point{X: x, Y: y}
	if p.IsIdentity() {
		return Point{}, aztecerror.New(aztecerror.PointAtInfinity, "point is the identity")
	}
	return p, nil
}

var (
	bigTwo   = newBig(2)
	bigThree = newBig(3)
)

// RecoverEvenY recovers a point from its 32-byte X coordinate alone,
// choosing the even-Y root - the canonical convention HashToPoint uses
// when deriving generators, and the one the 160-byte CRS layout relies
// on to fit h in 32 bytes instead of 64 (see crs.Parse).
func RecoverEvenY(xBytes []byte) (Point, error) {
	x, err := FieldElementFromBytes(xBytes)
	if err != nil {
		return Point{}, err
	}
	rhs := x.Square().Mul(x).Add(NewFieldElement(curveB))
	y, ok := rhs.sqrt()
	if !ok {
		return Point{}, aztecerror.New(aztecerror.NotOnCurve, "x has no corresponding y on curve")
	}
	if y.isOdd() {
		y = y.Neg()
	}
	p := Point{X: x, Y: y}
	if p.IsIdentity() {
		return Point{}, aztecerror.New(aztecerror.PointAtInfinity, "point is the identity")
	}
	return p, nil
}
