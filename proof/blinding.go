package proof

import (
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
	"github.com/tezansahu/aztec-prove/keccak"
	"github.com/tezansahu/aztec-prove/note"
)

// BlindingFactor is the per-note transient (bk, ba, B) tuple: fresh
// blinding scalars and the point they produce, per spec 3's "blinding
// factor record". Created at proof start, consumed for the challenge and
// responses, then zeroized.
type BlindingFactor struct {
	Bk bn128.Scalar
	Ba bn128.Scalar
	B  bn128.Point
}

// Zeroize wipes the blinding scalars. Call once the proof's responses
// have been computed and the factor is no longer needed, per spec 5's
// forward-secrecy requirement.
func (bf *BlindingFactor) Zeroize() {
	bf.Bk.Zeroize()
	bf.Ba.Zeroize()
}

// BlindingSchema is the pluggable algebra each proof kind supplies: given
// the notes, the partition point m, the CRS, a randomness source and the
// rolling transcript seeded with every note's (gamma, sigma), it derives
// one BlindingFactor per note subject to that proof kind's linear
// relations among the bk_i (spec 9, "Blinding-factor schemas as plug-in
// strategies" - adding a proof kind means adding a BlindingSchema, not
// branching the constructor skeleton).
type BlindingSchema interface {
	Derive(rng RandomnessSource, table *crs.CRS, roll *keccak.Transcript, notes []*note.Note, m int, kPublic bn128.Scalar) ([]BlindingFactor, error)
}

// standardBlindingPoint computes B = bk*gamma + ba*h, the point every
// schema uses for notes that carry no special algebraic constraint.
func standardBlindingPoint(table *crs.CRS, gamma bn128.Point, bk, ba bn128.Scalar) bn128.Point {
	return gamma.ScalarMul(bk).Add(table.H.ScalarMul(ba))
}
