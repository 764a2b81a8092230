package proof

import (
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/note"
)

// NoteRecord is one per-note entry of a proof transcript: [kBar, aBar,
// gamma.x, gamma.y, sigma.x, sigma.y] (spec 3, "Proof transcript").
type NoteRecord struct {
	KBar   bn128.Scalar
	ABar   bn128.Scalar
	GammaX bn128.FieldElement
	GammaY bn128.FieldElement
	SigmaX bn128.FieldElement
	SigmaY bn128.FieldElement
}

// Fields returns the six 32-byte big-endian encodings in transcript order.
func (r NoteRecord) Fields() [6][32]byte {
	return [6][32]byte{
		r.KBar.Bytes(),
		r.ABar.Bytes(),
		r.GammaX.Bytes(),
		r.GammaY.Bytes(),
		r.SigmaX.Bytes(),
		r.SigmaY.Bytes(),
	}
}

// newRecord builds the response pair kBar = k*c + bk, aBar = a*c + ba
// (mod n) for a note against challenge c and its blinding factor, per
// spec 4.F step 4.
func newRecord(n *note.Note, bf BlindingFactor, c bn128.Scalar) NoteRecord {
	kBar := n.K.Mul(c).Add(bf.Bk)
	aBar := n.A.Mul(c).Add(bf.Ba)
	return NoteRecord{
		KBar:   kBar,
		ABar:   aBar,
		GammaX: n.Gamma.X,
		GammaY: n.Gamma.Y,
		SigmaX: n.Sigma.X,
		SigmaY: n.Sigma.Y,
	}
}

// Result is what every proof constructor returns: the per-note records
// and the Fiat-Shamir challenge that produced them (spec 4.F, "All
// constructors return (proofData, challenge)").
type Result struct {
	Records   []NoteRecord
	Challenge bn128.Scalar
}
