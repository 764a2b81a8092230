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

// JoinSplitSchema is the canonical blinding-factor algebra (spec 4.F):
// every note except the last input note draws an independent bk; the
// last input note's bk is solved so that
//
//	sum_{i<m} bk_i - sum_{i>=m} bk_i == bkPublic (mod n)
//
// which is what makes the value-balance relation hold in zero knowledge.
type JoinSplitSchema struct{}

// Derive implements BlindingSchema.
func (JoinSplitSchema) Derive(rng RandomnessSource, table *crs.CRS, roll *keccak.Transcript, notes []*note.Note, m int, kPublic bn128.Scalar) ([]BlindingFactor, error) {
	if m < 1 || m > len(notes) {
		return nil, aztecerror.New(aztecerror.MTooBig, "join-split requires 1 <= m <= len(notes)")
	}

	roll.AppendScalar(kPublic)
	bkPublic := roll.Finalize()

	n := len(notes)
	bks := make([]bn128.Scalar, n)
	bas := make([]bn128.Scalar, n)
	constrained := m - 1

	sumOthersIn, sumOut := bn128.ScalarZero(), bn128.ScalarZero()
	for i := 0; i < n; i++ {
		ba, err := rng.Scalar()
		if err != nil {
			return nil, errors.Wrap(err, "proof: sampling ba")
		}
		bas[i] = ba

		if i == constrained {
			continue
		}
		bk, err := rng.Scalar()
		if err != nil {
			return nil, errors.Wrap(err, "proof: sampling bk")
		}
		bks[i] = bk
		if i < m {
			sumOthersIn = sumOthersIn.Add(bk)
		} else {
			sumOut = sumOut.Add(bk)
		}
	}
	// bk_public = sum_{i<m} bk_i - sum_{i>=m} bk_i
	// => bk_{m-1} = bk_public - sum_{i<m,i!=m-1} bk_i + sum_{i>=m} bk_i
	bks[constrained] = bkPublic.Sub(sumOthersIn).Add(sumOut)

	factors := make([]BlindingFactor, n)
	for i, nt := range notes {
		b := standardBlindingPoint(table, nt.Gamma, bks[i], bas[i])
		factors[i] = BlindingFactor{Bk: bks[i], Ba: bas[i], B: b}
	}
	return factors, nil
}

// ProveJoinSplit constructs a join-split proof over m input notes
// (notes[:m]) and len(notes)-m output notes (notes[m:]), with a public
// value kPublic (positive: withdrawal, negative mod n: deposit).
func ProveJoinSplit(rng RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note, m int, kPublic bn128.Scalar) (*Result, error) {
	if err := ParseInputs(Inputs{Notes: notes, Sender: sender, M: m, KPublic: &kPublic}); err != nil {
		return nil, err
	}

	roll := rollingNoteHash(notes)
	factors, err := JoinSplitSchema{}.Derive(rng, table, roll, notes, m, kPublic)
	if err != nil {
		return nil, err
	}
	defer zeroizeAll(factors)

	mVal := m
	challenge := ComputeChallenge(sender, ChallengeParams{KPublic: &kPublic, M: &mVal}, notes, factors)

	records := make([]NoteRecord, len(notes))
	for i, n := range notes {
		records[i] = newRecord(n, factors[i], challenge)
	}
	// Canonical convention: the final record's kBar slot stores kPublic
	// directly rather than the computed response (spec 4.F step 4).
	records[len(records)-1].KBar = kPublic

	return &Result{Records: records, Challenge: challenge}, nil
}

func zeroizeAll(factors []BlindingFactor) {
	for i := range factors {
		factors[i].Zeroize()
	}
}
