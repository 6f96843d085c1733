package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// String Decoder Tests
// ============================================================================

func TestDecodeString(t *testing.T) {
	t.Run("DecodesPaddedString", func(t *testing.T) {
		s, n, err := DecodeString([]byte{0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o', 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, "hello", s)
		assert.Equal(t, 12, n)
	})

	t.Run("DecodesAlignedString", func(t *testing.T) {
		s, n, err := DecodeString([]byte{0, 0, 0, 4, 'a', 'b', 'c', 'd'})
		require.NoError(t, err)
		assert.Equal(t, "abcd", s)
		assert.Equal(t, 8, n)
	})

	t.Run("DecodesEmptyString", func(t *testing.T) {
		s, n, err := DecodeString([]byte{0, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, "", s)
		assert.Equal(t, 4, n)
	})

	t.Run("DecodesMultibyteUTF8", func(t *testing.T) {
		// "héllo" is 6 bytes of UTF-8
		s, n, err := DecodeString([]byte{0, 0, 0, 6, 'h', 0xc3, 0xa9, 'l', 'l', 'o', 0, 0})
		require.NoError(t, err)
		assert.Equal(t, "héllo", s)
		assert.Equal(t, 12, n)
	})

	t.Run("RejectsInvalidUTF8", func(t *testing.T) {
		_, n, err := DecodeString([]byte{0, 0, 0, 2, 0xff, 0xfe, 0, 0})
		assert.ErrorIs(t, err, ErrStringFormat)
		assert.Equal(t, 0, n)
	})

	t.Run("RejectsShortLengthPrefix", func(t *testing.T) {
		_, _, err := DecodeString([]byte{0, 0, 0})
		assert.ErrorIs(t, err, ErrUintFormat)
	})

	t.Run("RejectsTruncatedPayload", func(t *testing.T) {
		_, n, err := DecodeString([]byte{0, 0, 0, 5, 'h', 'e'})
		assert.ErrorIs(t, err, ErrStringFormat)
		assert.Equal(t, 0, n)
	})

	t.Run("RejectsTruncatedPadding", func(t *testing.T) {
		_, _, err := DecodeString([]byte{0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o', 0})
		assert.ErrorIs(t, err, ErrStringFormat)
	})
}

func TestDecodeVarString(t *testing.T) {
	t.Run("AcceptsLengthEqualToMax", func(t *testing.T) {
		s, n, err := DecodeVarString(5, []byte{0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o', 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, "hello", s)
		assert.Equal(t, 12, n)
	})

	t.Run("AcceptsLengthUnderMax", func(t *testing.T) {
		s, n, err := DecodeVarString(16, []byte{0, 0, 0, 2, 'h', 'i', 0, 0})
		require.NoError(t, err)
		assert.Equal(t, "hi", s)
		assert.Equal(t, 8, n)
	})

	t.Run("RejectsLengthExceedingMax", func(t *testing.T) {
		_, n, err := DecodeVarString(5, []byte{0, 0, 0, 7, 'h', 'e', 'l', 'l', 'o', 0, 0, 0})
		assert.ErrorIs(t, err, ErrVarArrayWrongSize)
		assert.Equal(t, 0, n)
	})

	t.Run("ChecksBoundBeforePayload", func(t *testing.T) {
		// Only the prefix is present; the bound check must fire first.
		_, _, err := DecodeVarString(5, []byte{0, 0, 0, 7})
		assert.ErrorIs(t, err, ErrVarArrayWrongSize)
	})

	t.Run("RejectsShortLengthPrefix", func(t *testing.T) {
		_, _, err := DecodeVarString(5, []byte{0, 0})
		assert.ErrorIs(t, err, ErrUintFormat)
	})
}
