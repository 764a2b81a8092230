// Package keccak implements the domain-separated, Keccak-256 rolling
// transcript used to derive Fiat-Shamir challenges and blinding-factor
// chains. Modeled as an explicit state machine (append, then finalize)
// rather than a pure function: the blinding-factor schemas in package
// proof take a transcript already seeded with the notes, may append more
// (join-split appends kPublic), and then finalize it.
package keccak

import (
	"math/big"

	"github.com/tezansahu/aztec-prove/bn128"
	"golang.org/x/crypto/sha3"
)

// Transcript is an append-only buffer of 32-byte big-endian chunks.
type Transcript struct {
	h   hashWriter
	buf []byte
}

// hashWriter is the subset of hash.Hash the transcript needs; kept as
// its own tiny interface so tests can substitute a fake digest.
type hashWriter interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{h: sha3.NewLegacyKeccak256()}
}

// AppendBytes appends raw bytes to the buffer. Callers normally use
// AppendScalar/AppendPoint/AppendAddress instead; this is for literal
// domain-separation tags.
func (t *Transcript) AppendBytes(b []byte) {
	t.buf = append(t.buf, b...)
}

// AppendScalar left-pads a scalar to 32 bytes and appends it.
func (t *Transcript) AppendScalar(s bn128.Scalar) {
	b := s.Bytes()
	t.buf = append(t.buf, b[:]...)
}

// AppendBigInt left-pads an arbitrary-precision integer's absolute value
// to 32 bytes and appends it. There is no range check: a value longer
// than 32 bytes panics, so the caller range-checks against N or P
// beforehand.
func (t *Transcript) AppendBigInt(v *big.Int) {
	var out [32]byte
	b := v.Bytes()
	copy(out[32-len(b):], b)
	t.buf = append(t.buf, out[:]...)
}

// AppendAddress left-pads a 20-byte address to 32 bytes and appends it.
func (t *Transcript) AppendAddress(addr [20]byte) {
	var out [32]byte
	copy(out[12:], addr[:])
	t.buf = append(t.buf, out[:]...)
}

// AppendPoint appends a point's X then Y coordinate, each 32 bytes.
func (t *Transcript) AppendPoint(p bn128.Point) {
	x := p.X.Bytes()
	y := p.Y.Bytes()
	t.buf = append(t.buf, x[:]...)
	t.buf = append(t.buf, y[:]...)
}

// Finalize hashes the accumulated buffer with Keccak-256 and reduces the
// digest mod N, returning it as a Scalar. As a side effect the buffer is
// replaced with the 32-byte digest so a subsequent Append/Finalize call
// chains from this result (the "rolling hash" behavior). The
// blinding-factor schemas in package proof finalize their transcript
// once (see proof/privaterange.go and proof/joinsplit.go).
func (t *Transcript) Finalize() bn128.Scalar {
	t.h.Reset()
	t.h.Write(t.buf)
	digest := t.h.Sum(nil)
	t.buf = digest
	return bn128.NewScalar(new(big.Int).SetBytes(digest))
}

// FinalizeField is Finalize but reduces the digest mod P instead of mod
// N, for the rare case a rolling hash is consumed as a coordinate rather
// than a scalar.
func (t *Transcript) FinalizeField() bn128.FieldElement {
	t.h.Reset()
	t.h.Write(t.buf)
	digest := t.h.Sum(nil)
	t.buf = digest
	return bn128.NewFieldElement(new(big.Int).SetBytes(digest))
}
