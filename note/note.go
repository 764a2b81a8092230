// Package note implements the AZTEC confidential note primitive: a
// Pedersen commitment (gamma, sigma) to a value k, blinded by a viewing
// key a, owned by an Ethereum address.
package note

import (
	"crypto/ecdsa"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/crs"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// Note is a single confidential value commitment:
//
//	gamma = random generator unique to this note
//	sigma = k*h + a*gamma
//
// NoteHash and Owner let the on-chain registry index and authorize
// spends without learning k or a.
type Note struct {
	K         bn128.Scalar
	A         bn128.Scalar
	Gamma     bn128.Point
	Sigma     bn128.Point
	NoteHash  [32]byte
	Owner     common.Address
}

// FromViewingKey builds a note directly from a known viewing key a. This
// is the path a note's creator or a party holding the shared viewing key
// uses; a must be non-zero and k must not exceed bn128.KMax.
func FromViewingKey(rng io.Reader, table *crs.CRS, k uint64, a bn128.Scalar, owner common.Address) (*Note, error) {
	if a.IsZero() {
		return nil, aztecerror.New(aztecerror.ViewingKeyMalformed, "viewing key must be non-zero")
	}
	kBig := new(big.Int).SetUint64(k)
	if kBig.Cmp(bn128.KMax) > 0 {
		return nil, aztecerror.New(aztecerror.NoteValueTooBig, "note value exceeds K_MAX")
	}

	gamma, err := bn128.RandomPoint(rng)
	if err != nil {
		return nil, errors.Wrap(err, "note: sampling gamma")
	}

	kScalar := bn128.ScalarFromUint64(k)
	sigma := table.H.ScalarMul(kScalar).Add(gamma.ScalarMul(a))

	return build(kScalar, a, gamma, sigma, owner), nil
}

// FromPublicKey derives the viewing key deterministically from an
// owner's public key and a per-note nonce via HKDF over the shared
// secp256k1 x-coordinate, then proceeds as FromViewingKey. This mirrors
// the wallet-side derivation the original SDK delegates to an external
// signing layer (spec 4.C); only the derivation formula - HKDF-SHA3-256
// over (pubKey.X, nonce) reduced mod N - lives here.
func FromPublicKey(rng io.Reader, table *crs.CRS, k uint64, pubKey *ecdsa.PublicKey, nonce []byte, owner common.Address) (*Note, error) {
	if pubKey == nil || pubKey.X == nil {
		return nil, aztecerror.New(aztecerror.ViewingKeyMalformed, "public key is nil")
	}
	a, err := deriveViewingKey(pubKey, nonce)
	if err != nil {
		return nil, err
	}
	return FromViewingKey(rng, table, k, a, owner)
}

// deriveViewingKey implements the HKDF derivation referenced by
// FromPublicKey: extract-then-expand over the public key's X coordinate
// and the note nonce, reducing the output mod N and re-deriving on a
// zero result (HKDF output landing on exactly 0 mod N happens with
// negligible but non-zero probability; it is not a valid viewing key).
func deriveViewingKey(pubKey *ecdsa.PublicKey, nonce []byte) (bn128.Scalar, error) {
	secret := pubKey.X.Bytes()
	reader := hkdf.New(sha3.New256, secret, nonce, []byte("AZTEC-note-viewing-key"))
	for attempt := 0; attempt < 4; attempt++ {
		out := make([]byte, 32)
		if _, err := io.ReadFull(reader, out); err != nil {
			return bn128.Scalar{}, errors.Wrap(err, "note: deriving viewing key")
		}
		a := bn128.NewScalar(new(big.Int).SetBytes(out))
		if !a.IsZero() {
			return a, nil
		}
	}
	return bn128.Scalar{}, aztecerror.New(aztecerror.ViewingKeyMalformed, "derived viewing key is zero")
}

func build(k, a bn128.Scalar, gamma, sigma bn128.Point, owner common.Address) *Note {
	n := &Note{K: k, A: a, Gamma: gamma, Sigma: sigma, Owner: owner}
	n.NoteHash = computeNoteHash(gamma, sigma)
	return n
}

// computeNoteHash returns Keccak256(gamma.x || gamma.y || sigma.x || sigma.y).
func computeNoteHash(gamma, sigma bn128.Point) [32]byte {
	h := sha3.NewLegacyKeccak256()
	gb := gamma.Marshal()
	sb := sigma.Marshal()
	h.Write(gb[:])
	h.Write(sb[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Validate checks the invariants spec 3 requires of a note already in
// hand (e.g. one deserialized from the wire): gamma and sigma on-curve
// and non-identity, a non-zero, k within range.
func (n *Note) Validate() error {
	if !n.Gamma.IsOnCurve() {
		return aztecerror.New(aztecerror.NotOnCurve, "gamma not on curve")
	}
	if !n.Sigma.IsOnCurve() {
		return aztecerror.New(aztecerror.NotOnCurve, "sigma not on curve")
	}
	if n.A.IsZero() {
		return aztecerror.New(aztecerror.ViewingKeyMalformed, "viewing key is zero")
	}
	if n.K.BigInt().Cmp(bn128.KMax) > 0 {
		return aztecerror.New(aztecerror.NoteValueTooBig, "note value exceeds K_MAX")
	}
	return nil
}
