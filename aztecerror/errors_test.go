package aztecerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCodeOnly(t *testing.T) {
	a := New(NotOnCurve, "gamma is off curve")
	b := New(NotOnCurve, "sigma is off curve")
	assert.True(t, errors.Is(a, b))
}

func TestIsRejectsDifferentCode(t *testing.T) {
	a := New(NotOnCurve, "gamma is off curve")
	b := New(PointAtInfinity, "gamma is identity")
	assert.False(t, errors.Is(a, b))
}

func TestIsMatchesSentinel(t *testing.T) {
	err := New(ScalarTooBig, "k exceeds n")
	assert.True(t, errors.Is(err, ErrScalarTooBig))
}

func TestErrorMessageIncludesCode(t *testing.T) {
	err := New(KPublicMalformed, "kPublic out of range")
	assert.Contains(t, err.Error(), string(KPublicMalformed))
	assert.Contains(t, err.Error(), "kPublic out of range")
}
