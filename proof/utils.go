// Package proof implements the shared input validation, challenge
// derivation, and blinding-factor schemas used by every AZTEC proof
// constructor (join-split, bilateral swap, dividend computation, private
// range, mint, burn), plus the constructors themselves.
package proof

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/tezansahu/aztec-prove/aztecerror"
	"github.com/tezansahu/aztec-prove/bn128"
	"github.com/tezansahu/aztec-prove/note"
)

// Inputs bundles the arguments shared by every proof constructor: the
// complete note list (inputs followed by outputs), the sender, and the
// optional public value/partition fields a given proof kind uses.
type Inputs struct {
	Notes   []*note.Note
	Sender  common.Address
	M       int       // number of input notes; -1 if not applicable
	KPublic *bn128.Scalar // public value; nil if not applicable
}

// ParseInputs validates every element of in per spec 4.E, failing with
// exactly one named error kind.
func ParseInputs(in Inputs) error {
	if len(in.Notes) == 0 {
		return aztecerror.New(aztecerror.IncorrectNoteNumber, "at least one note is required")
	}
	if in.M != -1 {
		if in.M < 0 || in.M > len(in.Notes) {
			return aztecerror.New(aztecerror.MTooBig, "m exceeds note count")
		}
	}
	if in.KPublic != nil {
		if in.KPublic.BigInt().Sign() < 0 || in.KPublic.BigInt().Cmp(bn128.N) >= 0 {
			return aztecerror.New(aztecerror.KPublicMalformed, "kPublic must be in [0, n)")
		}
	}
	for _, n := range in.Notes {
		if n == nil {
			return aztecerror.New(aztecerror.IncorrectNoteNumber, "note list contains a nil entry")
		}
		if err := validateNote(n); err != nil {
			return err
		}
	}
	return nil
}

func validateNote(n *note.Note) error {
	if n.Gamma.IsIdentity() {
		return aztecerror.New(aztecerror.PointAtInfinity, "gamma is the point at infinity")
	}
	if !n.Gamma.IsOnCurve() {
		return aztecerror.New(aztecerror.NotOnCurve, "gamma is not on curve")
	}
	if n.Sigma.IsIdentity() {
		return aztecerror.New(aztecerror.PointAtInfinity, "sigma is the point at infinity")
	}
	if !n.Sigma.IsOnCurve() {
		return aztecerror.New(aztecerror.NotOnCurve, "sigma is not on curve")
	}
	if n.A.IsZero() {
		return aztecerror.New(aztecerror.ViewingKeyMalformed, "viewing key is zero")
	}
	if n.K.BigInt().Cmp(bn128.KMax) > 0 {
		return aztecerror.New(aztecerror.NoteValueTooBig, "note value exceeds K_MAX")
	}
	return nil
}

// requireExactNoteCount is a small helper the per-kind constructors use
// to enforce their fixed note-count shape (2-in-2-out swap, 3-note
// dividend/range) before doing anything else.
func requireExactNoteCount(notes []*note.Note, want int) error {
	if len(notes) != want {
		return aztecerror.New(aztecerror.IncorrectNoteNumber, "unexpected note count for this proof kind")
	}
	return nil
}
