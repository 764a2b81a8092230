// Package abi implements the byte-precise serialization of a proof's
// records and metadata into the verifier-ready blob spec 4.G describes,
// and the expected-output hash a caller can use to cheaply check a
// validator's response without re-running verification itself. Encode
// does not write the expected-output hash into the blob; it is computed
// separately by ComputeExpectedOutput (aztec.Output carries it next to
// the blob).
package abi

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// ComputeExpectedOutput Keccak-hashes the declared input and output note
// hashes, in order, into the 32-byte value the on-chain validator
// contract is expected to return on a successful verification (spec
// 4.G, "encodeProofOutputs").
func ComputeExpectedOutput(inputNoteHashes, outputNoteHashes [][32]byte) [32]byte {
	var buf []byte
	for _, h := range inputNoteHashes {
		buf = append(buf, h[:]...)
	}
	for _, h := range outputNoteHashes {
		buf = append(buf, h[:]...)
	}
	var out [32]byte
	copy(out[:], crypto.Keccak256(buf))
	return out
}

// VerifyExpectedOutput is decodeProofOutputs's practical use: it recomputes
// the expected-output hash from the same note hashes and reports whether
// it matches what a validator (or an earlier call to
// ComputeExpectedOutput) produced.
func VerifyExpectedOutput(inputNoteHashes, outputNoteHashes [][32]byte, want [32]byte) bool {
	got := ComputeExpectedOutput(inputNoteHashes, outputNoteHashes)
	return got == want
}
