// Package sha3 registers a SHA3-256 hasher.
package sha3

import (
	"encoding/hex"

	"github.com/coniks-sys/authskiplist/crypto/hasher"
	xsha3 "golang.org/x/crypto/sha3"
)

func init() {
	hasher.RegisterHasher(SHA3256, New)
}

// SHA3256 is the identity of the SHA3-256 hasher.
const SHA3256 = "SHA3-256"

type sha3Hasher struct{}

// New returns an instance of the SHA3-256 hasher.
func New() hasher.Hasher {
	return sha3Hasher{}
}

func (sha3Hasher) ID() string {
	return SHA3256
}

func (sha3Hasher) Size() int {
	return 32
}

func (sha3Hasher) Digest(ms ...[]byte) string {
	h := xsha3.New256()
	for _, m := range ms {
		h.Write(m)
	}
	return hex.EncodeToString(h.Sum(nil))
}
