// Package cryptox seals local state at rest. The persisted session record is
// encrypted with AES-GCM under a key derived (argon2id) from a per-device
// random secret, so the state database alone does not expose the bearer token.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/common"
	"golang.org/x/crypto/argon2"
)

// ErrMalformedCiphertext is returned by Open when the sealed blob is too
// short to contain a nonce.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// DeriveStorageKey derives a 32-byte AES key from the device secret and salt.
func DeriveStorageKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Sealer encrypts and decrypts small blobs with AES-GCM.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer creates a Sealer for the given key. The key must be 16, 24 or
// 32 bytes (DeriveStorageKey produces 32).
func NewSealer(key []byte) (*Sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext and returns nonce||ciphertext. A fresh random
// nonce is generated per call.
func (s *Sealer) Seal(plaintext []byte) []byte {
	nonce := common.GenerateRandByteArray(s.aead.NonceSize())
	return s.aead.Seal(nonce, nonce, plaintext, nil)
}

// Open decrypts a blob produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < s.aead.NonceSize() {
		return nil, ErrMalformedCiphertext
	}
	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	return s.aead.Open(nil, nonce, ciphertext, nil)
}
