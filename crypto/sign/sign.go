// Package sign wraps ed25519 keys used to sign root digests.
package sign

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/ed25519"
)

const (
	PrivateKeySize = ed25519.PrivateKeySize
	PublicKeySize  = ed25519.PublicKeySize
)

// ErrBadKeyLength indicates a key of the wrong size was loaded.
var ErrBadKeyLength = errors.New("[sign] Bad key length")

type PrivateKey ed25519.PrivateKey
type PublicKey ed25519.PublicKey

// GenerateKey creates a new signing key from rnd.
// If rnd is nil, crypto/rand is used.
func GenerateKey(rnd io.Reader) (PrivateKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	_, sk, err := ed25519.GenerateKey(rnd)
	return PrivateKey(sk), err
}

// NewPrivateKey checks the length of b and returns it as a PrivateKey.
func NewPrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, ErrBadKeyLength
	}
	return PrivateKey(b), nil
}

// NewPublicKey checks the length of b and returns it as a PublicKey.
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, ErrBadKeyLength
	}
	return PublicKey(b), nil
}

func (key PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(key), message)
}

func (key PrivateKey) Public() (PublicKey, bool) {
	pk, ok := ed25519.PrivateKey(key).Public().(ed25519.PublicKey)
	return PublicKey(pk), ok
}

func (pk PublicKey) Verify(message, sig []byte) bool {
	if len(pk) != PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pk), message, sig)
}
