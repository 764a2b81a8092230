package bn128

import "github.com/tezansahu/aztec-prove/aztecerror"

// G2Point holds the four Fp2 limbs of a BN128 G2 point: t2 = (xi, xr) +
// (yi, yr)*i. The proof engine never performs G2 arithmetic — t2 is a
// frozen trusted-setup constant consumed opaquely by the on-chain
// pairing check — so this is a storage/serialization type only.
type G2Point struct {
	Xi, Xr, Yi, Yr FieldElement
}

// Marshal returns the 128-byte encoding: Xi || Xr || Yi || Yr.
func (g G2Point) Marshal() [128]byte {
	var out [128]byte
	xi := g.Xi.Bytes()
	xr := g.Xr.Bytes()
	yi := g.Yi.Bytes()
	yr := g.Yr.Bytes()
	copy(out[0:32], xi[:])
	copy(out[32:64], xr[:])
	copy(out[64:96], yi[:])
	copy(out[96:128], yr[:])
	return out
}

// UnmarshalG2 parses a 128-byte encoding produced by Marshal.
func UnmarshalG2(b []byte) (G2Point, error) {
	if len(b) != 128 {
		return G2Point{}, aztecerror.New(aztecerror.EncodingInvalidLength, "g2 point encoding must be 128 bytes")
	}
	xi, err := FieldElementFromBytes(b[0:32])
	if err != nil {
		return G2Point{}, err
	}
	xr, err := FieldElementFromBytes(b[32:64])
	if err != nil {
		return G2Point{}, err
	}
	yi, err := FieldElementFromBytes(b[64:96])
	if err != nil {
		return G2Point{}, err
	}
	yr, err := FieldElementFromBytes(b[96:128])
	if err != nil {
		return G2Point{}, err
	}
	return G2Point{Xi: xi, Xr: xr, Yi: yi, Yr: yr}, nil
}
