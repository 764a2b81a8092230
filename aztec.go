// Package aztec is the engine's single entry point: one Prove* function
// per proof kind, each wiring together input validation, blinding-factor
// derivation, challenge computation (all in package proof), CRS lookup,
// and ABI encoding (package abi) into the (proofData, challenge,
// expectedOutput) triple spec 6 names as the engine's external interface.
package aztec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/tezansahu/aztec-prove/abi"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
	"github.com/tezansahu/aztec-prove/note"
	"github.com/tezansahu/aztec-prove/proof"
)

// Output is what every Prove* function returns: the ABI-encoded proof
// blob, the Fiat-Shamir challenge, and the expected-output hash the
// on-chain validator returns on acceptance.
type Output struct {
	ProofData      []byte
	Challenge      bn128.Scalar
	ExpectedOutput [32]byte
}

// finalize runs the common tail every proof kind shares once it has a
// proof.Result: compute the expected-output hash from the declared input
// and output note hashes, then ABI-encode everything together.
func finalize(result *proof.Result, notes []*note.Note, m int, inputOwners, outputOwners []common.Address, publicOwner *common.Address, kPublic *bn128.Scalar, metadata []note.Metadata) (*Output, error) {
	var inputHashes, outputHashes [][32]byte
	for i, n := range notes {
		if i < m {
			inputHashes = append(inputHashes, n.NoteHash)
		} else {
			outputHashes = append(outputHashes, n.NoteHash)
		}
	}
	expected := abi.ComputeExpectedOutput(inputHashes, outputHashes)

	var mPtr *int
	if m >= 0 {
		mVal := m
		mPtr = &mVal
	}

	blob, err := abi.Encode(abi.ProofOutputs{
		Challenge:      result.Challenge,
		M:              mPtr,
		PublicOwner:    publicOwner,
		KPublic:        kPublic,
		Records:        result.Records,
		InputOwners:    inputOwners,
		OutputOwners:   outputOwners,
		OutputMetadata: metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "aztec: encoding proof outputs")
	}

	return &Output{ProofData: blob, Challenge: result.Challenge, ExpectedOutput: expected}, nil
}

// ProveJoinSplit proves a join-split: the first m notes are inputs, the
// rest outputs, and kPublic is the public value crossing the shielded
// boundary (positive withdrawal, or n-kPublic deposit).
func ProveJoinSplit(rng proof.RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note, m int, kPublic bn128.Scalar, inputOwners, outputOwners []common.Address, publicOwner common.Address, metadata []note.Metadata) (*Output, error) {
	result, err := proof.ProveJoinSplit(rng, table, sender, notes, m, kPublic)
	if err != nil {
		return nil, err
	}
	return finalize(result, notes, m, inputOwners, outputOwners, &publicOwner, &kPublic, metadata)
}

// ProveBilateralSwap proves a 2-in-2-out swap: notes[0],notes[1] is the
// first pair, notes[2],notes[3] the second, with equal aggregate value.
func ProveBilateralSwap(rng proof.RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note, inputOwners, outputOwners []common.Address, metadata []note.Metadata) (*Output, error) {
	result, err := proof.ProveBilateralSwap(rng, table, sender, notes)
	if err != nil {
		return nil, err
	}
	return finalize(result, notes, 2, inputOwners, outputOwners, nil, nil, metadata)
}

// ProveDividend proves za*k_target = zb*k_principal + k_residual over
// notes = [principal, residual, target].
func ProveDividend(rng proof.RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note, za, zb *big.Int, inputOwners, outputOwners []common.Address, metadata []note.Metadata) (*Output, error) {
	result, err := proof.ProveDividend(rng, table, sender, notes, za, zb)
	if err != nil {
		return nil, err
	}
	return finalize(result, notes, 2, inputOwners, outputOwners, nil, nil, metadata)
}

// ProvePrivateRange proves notes[0] >= notes[1], with notes[2] the
// utility note the verifier uses to reconstruct the third response.
func ProvePrivateRange(rng proof.RandomnessSource, table *crs.CRS, sender common.Address, notes []*note.Note, inputOwners, outputOwners []common.Address, metadata []note.Metadata) (*Output, error) {
	result, err := proof.ProvePrivateRange(rng, table, sender, notes)
	if err != nil {
		return nil, err
	}
	return finalize(result, notes, 2, inputOwners, outputOwners, nil, nil, metadata)
}

// ProveMint proves a minting join-split over the full structure spec 4.F
// names: oldTotal and the newly minted notes are inputs, the single
// newTotal note the sole output, so oldTotal + sum(minted) == newTotal.
// kPublic is the newTotalMinted commitment hash, repurposing the usual
// public-value slot (spec 4.F).
func ProveMint(rng proof.RandomnessSource, table *crs.CRS, sender common.Address, oldTotal *note.Note, minted []*note.Note, newTotal *note.Note, kPublic bn128.Scalar, inputOwners, outputOwners []common.Address, publicOwner common.Address, metadata []note.Metadata) (*Output, error) {
	result, err := proof.ProveMint(rng, table, sender, oldTotal, minted, newTotal, kPublic)
	if err != nil {
		return nil, err
	}
	notes := make([]*note.Note, 0, 2+len(minted))
	notes = append(notes, oldTotal)
	notes = append(notes, minted...)
	notes = append(notes, newTotal)
	m := 1 + len(minted)
	return finalize(result, notes, m, inputOwners, outputOwners, &publicOwner, &kPublic, metadata)
}

// ProveBurn proves a burning join-split over the full structure spec 4.F
// names: oldTotal is the sole input, newTotal and the burned notes its
// outputs, so oldTotal == newTotal + sum(burned). kPublic is the
// newTotalBurned commitment hash, repurposing the usual public-value
// slot the same way ProveMint does.
func ProveBurn(rng proof.RandomnessSource, table *crs.CRS, sender common.Address, oldTotal *note.Note, burned []*note.Note, newTotal *note.Note, kPublic bn128.Scalar, inputOwners, outputOwners []common.Address, publicOwner common.Address, metadata []note.Metadata) (*Output, error) {
	result, err := proof.ProveBurn(rng, table, sender, oldTotal, burned, newTotal, kPublic)
	if err != nil {
		return nil, err
	}
	notes := make([]*note.Note, 0, 2+len(burned))
	notes = append(notes, oldTotal)
	notes = append(notes, burned...)
	notes = append(notes, newTotal)
	return finalize(result, notes, 1, inputOwners, outputOwners, &publicOwner, &kPublic, metadata)
}
