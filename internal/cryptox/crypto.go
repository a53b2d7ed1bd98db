// Package cryptox seals snapshot payloads at rest: argon2id key derivation
// from a passphrase and AES-GCM authenticated encryption.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	KeySize   = 32
	SaltSize  = 16
	NonceSize = 12
)

var (
	ErrDecrypt    = errors.New("decryption failed")
	ErrShortInput = errors.New("sealed payload too short")
)

// DeriveKey stretches a passphrase into a KeySize-byte AES-256 key.
// The same passphrase and salt always give the same key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// RandomBytes returns n bytes from crypto/rand.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return b, nil
}

// Seal encrypts plaintext with AES-GCM under key. The random nonce is
// prepended to the ciphertext, so the result is self-contained.
func Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := RandomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. A wrong key or tampered payload yields ErrDecrypt.
func Open(sealed, key []byte) ([]byte, error) {
	if len(sealed) < NonceSize {
		return nil, ErrShortInput
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, sealed[:NonceSize], sealed[NonceSize:], nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}

// WipeBytes overwrites b with zeros. Nil is fine.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}
