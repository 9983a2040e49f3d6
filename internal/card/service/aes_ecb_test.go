package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardvault/internal/card/domain"
)

func newEncryptor(t *testing.T) *AESECBEncryptor {
	t.Helper()
	enc, err := NewAESECBEncryptor("0123456789abcdef")
	require.NoError(t, err)
	return enc
}

func TestNewAESECBEncryptor(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		enc, err := NewAESECBEncryptor("")
		assert.Error(t, err)
		assert.Nil(t, enc)
	})

	t.Run("short key is padded", func(t *testing.T) {
		enc, err := NewAESECBEncryptor("short")
		require.NoError(t, err)
		assert.NotNil(t, enc)
	})

	t.Run("long key is truncated", func(t *testing.T) {
		enc, err := NewAESECBEncryptor("this-key-is-much-longer-than-sixteen-bytes")
		require.NoError(t, err)
		assert.NotNil(t, enc)
	})
}

func TestAESECBEncryptor_RoundTrip(t *testing.T) {
	enc := newEncryptor(t)

	cardNumbers := []string{
		"4111111111111111",
		"4111111111111",
		"4111111111111111111",
	}

	for _, cardNumber := range cardNumbers {
		ciphertext, err := enc.Encrypt(cardNumber)
		require.NoError(t, err)
		assert.NotEqual(t, cardNumber, ciphertext)

		plaintext, err := enc.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, cardNumber, plaintext)
	}
}

func TestAESECBEncryptor_Deterministic(t *testing.T) {
	enc := newEncryptor(t)

	first, err := enc.Encrypt("4111111111111111")
	require.NoError(t, err)
	second, err := enc.Encrypt("4111111111111111")
	require.NoError(t, err)

	// Dedup depends on this equality.
	assert.Equal(t, first, second)

	other, err := enc.Encrypt("4222222222222222")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestAESECBEncryptor_KeyNormalizationChangesCiphertext(t *testing.T) {
	shortKey, err := NewAESECBEncryptor("abc")
	require.NoError(t, err)
	paddedKey, err := NewAESECBEncryptor("abc0000000000000")
	require.NoError(t, err)
	otherKey, err := NewAESECBEncryptor("another-key-1234")
	require.NoError(t, err)

	fromShort, err := shortKey.Encrypt("4111111111111111")
	require.NoError(t, err)
	fromPadded, err := paddedKey.Encrypt("4111111111111111")
	require.NoError(t, err)
	fromOther, err := otherKey.Encrypt("4111111111111111")
	require.NoError(t, err)

	// "abc" is right-padded with '0' to 16 bytes, so both keys are effectively equal.
	assert.Equal(t, fromPadded, fromShort)
	assert.NotEqual(t, fromOther, fromShort)
}

func TestAESECBEncryptor_DecryptErrors(t *testing.T) {
	enc := newEncryptor(t)

	t.Run("not base64", func(t *testing.T) {
		_, err := enc.Decrypt("%%%not-base64%%%")
		assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
	})

	t.Run("wrong block length", func(t *testing.T) {
		_, err := enc.Decrypt("YWJj") // "abc", 3 bytes
		assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
	})

	t.Run("wrong key never recovers the plaintext", func(t *testing.T) {
		other, err := NewAESECBEncryptor("a-different-key!")
		require.NoError(t, err)

		ciphertext, err := enc.Encrypt("4111111111111111")
		require.NoError(t, err)

		plaintext, err := other.Decrypt(ciphertext)
		if err == nil {
			// Garbage that coincidentally forms valid padding.
			assert.NotEqual(t, "4111111111111111", plaintext)
		} else {
			assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
		}
	})
}
