package proof

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
	"github.com/tezansahu/aztec-prove/keccak"
	"github.com/tezansahu/aztec-prove/note"
)

// PrivateRangeSchema chains blinding factors through the rolling hash x
// of the note transcript: B_0 uses bk_0 directly, B_1 uses bk_1*x, and
// B_2 uses (bk_0 - bk_1)*x (spec 4.F). notes must be ordered [original,
// comparison, utility], proving original >= comparison.
type PrivateRangeSchema struct{}

// Derive implements BlindingSchema. kPublic and m are unused.
func (PrivateRangeSchema) Derive(rng RandomnessSource, table *crs.CRS, roll *keccak.Transcript, notes []*note.Note, m int, kPublic bn128.Scalar) ([]BlindingFactor, error) {
	if len(notes) != 3 {
		return nil, aztecerror.New(aztecerror.IncorrectNoteNumber, "private range requires exactly 3 notes: original, comparison, utility")
	}
	x := roll.Finalize()

	bas := make([]bn128.Scalar, 3)
	for i := range bas {
		ba, err := rng.Scalar()
		if err != nil {
			return nil, errors.Wrap(err, "proof: sampling ba")
		}
		bas[i] = ba
	}
	bk0, err := rng.Scalar()
	if err != nil {
		return nil, errors.Wrap(err, "proof: sampling bk0")
	}
	bk1, err := rng.Scalar()
	if err != nil {
		return nil, errors.Wrap(err, "proof: sampling bk1")
	}

	bk1x := bk1.Mul(x)
	bk2 := bk0.Sub(bk1).Mul(x)

	factors := make([]BlindingFactor, 3)
	factors[0] = BlindingFactor{Bk: bk0, Ba: bas[0], B: standardBlindingPoint(table, notes[0].Gamma, bk0, bas[0])}
	factors[1] = BlindingFactor{Bk: bk1x, Ba: bas[1], B: standardBlindingPoint(table, notes[1].Gamma, bk1x, bas[1])}
	factors[2] = BlindingFactor{Bk: bk2, Ba: bas[2], B: standardBlindingPoint(table, notes[2].Gamma, bk2, bas[2])}
	return factors, nil
}

// ProvePrivateRange constructs a proof that notes[0] >= notes[1], with
// notes[2] the utility note the verifier uses to reconstruct the third
// response. The constructor emits a canonical zero in the utility note's
// kBar slot rather than a random filler: spec 9's open question notes
// that a random filler risks silent acceptance of malformed proofs if a
// future verifier version ever mistakenly treats that slot as
// meaningful, whereas a canonical zero is unambiguous and a verifier can
// be written to tolerate either (documented, not silently perpetuated).
func ProvePrivateRange(rng RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note) (*Result, error) {
	if err := requireExactNoteCount(notes, 3); err != nil {
		return nil, err
	}
	if err := ParseInputs(Inputs{Notes: notes, Sender: sender, M: -1}); err != nil {
		return nil, err
	}

	roll := rollingNoteHash(notes)
	factors, err := PrivateRangeSchema{}.Derive(rng, table, roll, notes, -1, bn128.ScalarZero())
	if err != nil {
		return nil, err
	}
	defer zeroizeAll(factors)

	challenge := ComputeChallenge(sender, ChallengeParams{}, notes, factors)

	records := make([]NoteRecord, 3)
	for i, n := range notes {
		records[i] = newRecord(n, factors[i], challenge)
	}
	records[2].KBar = bn128.ScalarZero()

	return &Result{Records: records, Challenge: challenge}, nil
}
