// Package aztecerror defines the closed taxonomy of error kinds the proof
// engine can fail with. Validation failures in bn128, note, proof, and
// abi are returned as one of these, possibly wrapped with
// github.com/pkg/errors for call-site context. Errors from a randomness
// source or from key generation are not part of the taxonomy; they are
// returned as they come or wrapped with context. Callers should compare
// kinds with errors.Is against the Err* sentinels, not by matching
// strings against Error().
package aztecerror

import "fmt"

// Code is a stable, caller-facing error identifier.
type Code string

const (
	KPublicMalformed      Code = "KPUBLIC_MALFORMED"
	MTooBig               Code = "M_TOO_BIG"
	NotOnCurve            Code = "NOT_ON_CURVE"
	PointAtInfinity       Code = "POINT_AT_INFINITY"
	ViewingKeyMalformed   Code = "VIEWING_KEY_MALFORMED"
	NoteValueTooBig       Code = "NOTE_VALUE_TOO_BIG"
	BadBlindingFactor     Code = "BAD_BLINDING_FACTOR"
	IncorrectNoteNumber   Code = "INCORRECT_NOTE_NUMBER"
	ChallengeResponseFail Code = "CHALLENGE_RESPONSE_FAIL"
	EncodingInvalidLength Code = "ENCODING_INVALID_LENGTH"
	ScalarTooBig          Code = "SCALAR_TOO_BIG"
)

// Error is a named-kind error: a stable Code plus a human-readable
// message for logs/debugging. The message is never part of the
// contract callers rely on - only the Code is.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is reports equality by Code so errors.Is(err, aztecerror.ErrNotOnCurve)
// matches regardless of the wrapped message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New builds an Error of the given kind with a message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Sentinels for errors.Is comparisons; the Msg field is ignored by Is.
var (
	ErrKPublicMalformed      = &Error{Code: KPublicMalformed}
	ErrMTooBig               = &Error{Code: MTooBig}
	ErrNotOnCurve            = &Error{Code: NotOnCurve}
	ErrPointAtInfinity       = &Error{Code: PointAtInfinity}
	ErrViewingKeyMalformed   = &Error{Code: ViewingKeyMalformed}
	ErrNoteValueTooBig       = &Error{Code: NoteValueTooBig}
	ErrBadBlindingFactor     = &Error{Code: BadBlindingFactor}
	ErrIncorrectNoteNumber   = &Error{Code: IncorrectNoteNumber}
	ErrChallengeResponseFail = &Error{Code: ChallengeResponseFail}
	ErrEncodingInvalidLength = &Error{Code: EncodingInvalidLength}
	ErrScalarTooBig          = &Error{Code: ScalarTooBig}
)
