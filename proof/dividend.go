package proof

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
	"github.com/tezansahu/aztec-prove/keccak"
	"github.com/tezansahu/aztec-prove/note"
)

// DividendSchema enforces za*k_target = zb*k_principal + k_residual in
// zero knowledge, over notes ordered [principal, residual, target] (spec
// 4.F). za and zb are public integers known to both prover and verifier.
type DividendSchema struct {
	Za, Zb *big.Int
}

// Derive implements BlindingSchema. kPublic and m are unused (dividend
// proofs carry no public value or input/output partition).
func (d DividendSchema) Derive(rng RandomnessSource, table *crs.CRS, roll *keccak.Transcript, notes []*note.Note, m int, kPublic bn128.Scalar) ([]BlindingFactor, error) {
	if len(notes) != 3 {
		return nil, aztecerror.New(aztecerror.IncorrectNoteNumber, "dividend requires exactly 3 notes: principal, residual, target")
	}
	za := bn128.NewScalar(d.Za)
	if za.IsZero() {
		return nil, aztecerror.New(aztecerror.BadBlindingFactor, "za must be non-zero mod n")
	}

	bas := make([]bn128.Scalar, 3)
	for i := range bas {
		ba, err := rng.Scalar()
		if err != nil {
			return nil, errors.Wrap(err, "proof: sampling ba")
		}
		bas[i] = ba
	}

	bkPrincipal, err := rng.Scalar()
	if err != nil {
		return nil, errors.Wrap(err, "proof: sampling bk principal")
	}
	bkResidual, err := rng.Scalar()
	if err != nil {
		return nil, errors.Wrap(err, "proof: sampling bk residual")
	}
	// za*bk_target = zb*bk_principal + bk_residual
	zb := bn128.NewScalar(d.Zb)
	bkTarget := zb.Mul(bkPrincipal).Add(bkResidual).Mul(za.Inverse())

	bks := []bn128.Scalar{bkPrincipal, bkResidual, bkTarget}
	factors := make([]BlindingFactor, 3)
	for i, nt := range notes {
		b := standardBlindingPoint(table, nt.Gamma, bks[i], bas[i])
		factors[i] = BlindingFactor{Bk: bks[i], Ba: bas[i], B: b}
	}
	return factors, nil
}

// ProveDividend constructs a dividend-computation proof over
// notes = [principal, residual, target] showing za*k_target ==
// zb*k_principal + k_residual without revealing any of the three values.
func ProveDividend(rng RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note, za, zb *big.Int) (*Result, error) {
	if err := requireExactNoteCount(notes, 3); err != nil {
		return nil, err
	}
	if err := ParseInputs(Inputs{Notes: notes, Sender: sender, M: -1}); err != nil {
		return nil, err
	}

	schema := DividendSchema{Za: za, Zb: zb}
	roll := rollingNoteHash(notes)
	factors, err := schema.Derive(rng, table, roll, notes, -1, bn128.ScalarZero())
	if err != nil {
		return nil, err
	}
	defer zeroizeAll(factors)

	challenge := ComputeChallenge(sender, ChallengeParams{}, notes, factors)

	records := make([]NoteRecord, 3)
	for i, n := range notes {
		records[i] = newRecord(n, factors[i], challenge)
	}
	return &Result{Records: records, Challenge: challenge}, nil
}
