// Package service provides the cryptographic services backing card storage.
package service

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"

	"github.com/allisson/cardvault/internal/card/domain"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// keySize is the normalized AES-128 key length in bytes.
const keySize = 16

// AESECBEncryptor implements CardEncryptor using AES-128 in ECB mode with
// PKCS#7 padding and base64 output.
//
// ECB is intentionally used here: it is deterministic, and determinism is a
// load-bearing property of this service — stored ciphertexts double as the
// equality key for duplicate detection and card lookup. ECB leaks equal-block
// patterns and is weaker than an AEAD mode; do NOT "fix" this by switching to
// a randomized mode without also redesigning the dedup strategy.
//
// The configured key is normalized to exactly 16 bytes: truncated when
// longer, right-padded with ASCII '0' when shorter. The normalization rule
// changes the effective key, so it must stay stable across deployments or
// every stored ciphertext becomes unreachable.
type AESECBEncryptor struct {
	block cipher.Block
}

// NewAESECBEncryptor creates a new encryptor from the configured key string.
// Returns an error when the key is empty or the cipher cannot be initialized.
func NewAESECBEncryptor(key string) (*AESECBEncryptor, error) {
	if key == "" {
		return nil, apperrors.New("card encryption key must not be empty")
	}

	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create AES cipher")
	}

	return &AESECBEncryptor{block: block}, nil
}

// Encrypt encrypts a card number and returns the base64-encoded ciphertext.
// Deterministic: the same plaintext always yields the same ciphertext.
func (e *AESECBEncryptor) Encrypt(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += aes.BlockSize {
		e.block.Encrypt(ciphertext[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decodes and decrypts a base64 ciphertext back to the card number.
func (e *AESECBEncryptor) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", apperrors.Wrap(domain.ErrDecryptionFailed, "ciphertext is not valid base64")
	}

	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", apperrors.Wrap(domain.ErrDecryptionFailed, "ciphertext length is not a multiple of the block size")
	}

	plaintext := make([]byte, len(data))
	for i := 0; i < len(data); i += aes.BlockSize {
		e.block.Decrypt(plaintext[i:i+aes.BlockSize], data[i:i+aes.BlockSize])
	}

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", apperrors.Wrap(domain.ErrDecryptionFailed, err.Error())
	}

	return string(unpadded), nil
}

// normalizeKey normalizes the configured key to exactly keySize bytes:
// truncation when longer, right-padding with ASCII '0' when shorter.
func normalizeKey(key string) []byte {
	if len(key) > keySize {
		return []byte(key[:keySize])
	}

	normalized := make([]byte, keySize)
	copy(normalized, key)
	for i := len(key); i < keySize; i++ {
		normalized[i] = '0'
	}
	return normalized
}

// pkcs7Pad appends PKCS#7 padding up to the block size.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad strips and validates PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, apperrors.New("invalid padded data length")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, apperrors.New("invalid padding length")
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, apperrors.New("invalid padding bytes")
		}
	}

	return data[:len(data)-padLen], nil
}
