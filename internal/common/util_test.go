package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	require.NoError(t, err)
	assert.Len(t, s, n*2)

	_, err = hex.DecodeString(s)
	assert.NoError(t, err, "string is not valid hex")
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestMakeRandHexString_Distinct(t *testing.T) {
	a, err := MakeRandHexString(32)
	require.NoError(t, err)
	b, err := MakeRandHexString(32)
	require.NoError(t, err)

	if a == b {
		t.Logf("warning: two MakeRandHexString(32) results are identical; extremely unlikely")
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "must be at most %d characters", 50)
	assert.Equal(t, "title: must be at most 50 characters", err.Error())

	wrapped := fmt.Errorf("create note: %w", err)
	assert.True(t, IsValidation(wrapped))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "title", ve.Field)

	assert.False(t, IsValidation(ErrorNotFound))
	assert.Equal(t, "query is required", (&ValidationError{Message: "query is required"}).Error())
}

func TestIsTokenError(t *testing.T) {
	assert.True(t, IsTokenError(ErrTokenExpired))
	assert.True(t, IsTokenError(fmt.Errorf("verify: %w", ErrTokenMalformed)))
	assert.True(t, IsTokenError(ErrTokenSignatureInvalid))
	assert.False(t, IsTokenError(ErrorNotFound))
}
