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

// BilateralSwapSchema enforces bk[0] == bk[2] and bk[1] == bk[3]: two
// swapped pairs share blinding scalars so the challenge can only be
// satisfied when the pairs are equal in value (spec 4.F).
type BilateralSwapSchema struct{}

// Derive implements BlindingSchema. kPublic is unused by this schema
// (bilateral swap has no public value) and is accepted only to satisfy
// the BlindingSchema interface.
func (BilateralSwapSchema) Derive(rng RandomnessSource, table *crs.CRS, roll *keccak.Transcript, notes []*note.Note, m int, kPublic bn128.Scalar) ([]BlindingFactor, error) {
	if len(notes) != 4 {
		return nil, aztecerror.New(aztecerror.IncorrectNoteNumber, "bilateral swap requires exactly 4 notes")
	}

	bas := make([]bn128.Scalar, 4)
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
	bks := []bn128.Scalar{bk0, bk1, bk0, bk1}

	factors := make([]BlindingFactor, 4)
	for i, nt := range notes {
		b := standardBlindingPoint(table, nt.Gamma, bks[i], bas[i])
		factors[i] = BlindingFactor{Bk: bks[i], Ba: bas[i], B: b}
	}
	return factors, nil
}

// ProveBilateralSwap constructs a 2-in-2-out swap proof: notes[0],
// notes[1] are the first pair, notes[2], notes[3] the second, and the
// proof shows the two pairs carry equal value without revealing it.
func ProveBilateralSwap(rng RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note) (*Result, error) {
	if err := requireExactNoteCount(notes, 4); err != nil {
		return nil, err
	}
	if err := ParseInputs(Inputs{Notes: notes, Sender: sender, M: -1}); err != nil {
		return nil, err
	}

	roll := rollingNoteHash(notes)
	factors, err := BilateralSwapSchema{}.Derive(rng, table, roll, notes, -1, bn128.ScalarZero())
	if err != nil {
		return nil, err
	}
	defer zeroizeAll(factors)

	challenge := ComputeChallenge(sender, ChallengeParams{}, notes, factors)

	records := make([]NoteRecord, 4)
	for i, n := range notes {
		records[i] = newRecord(n, factors[i], challenge)
	}
	return &Result{Records: records, Challenge: challenge}, nil
}
