// Package sha2 registers the default SHA-256 hasher.
package sha2

import (
	"github.com/coniks-sys/authskiplist/crypto"
	"github.com/coniks-sys/authskiplist/crypto/hasher"
)

func init() {
	hasher.RegisterHasher(SHA256, New)
}

// SHA256 is the identity of the SHA-256 hasher.
const SHA256 = crypto.HashID

type sha256Hasher struct{}

// New returns an instance of the SHA-256 hasher.
func New() hasher.Hasher {
	return sha256Hasher{}
}

func (sha256Hasher) ID() string {
	return SHA256
}

func (sha256Hasher) Size() int {
	return crypto.HashSizeByte
}

func (sha256Hasher) Digest(ms ...[]byte) string {
	return crypto.Digest(ms...)
}
