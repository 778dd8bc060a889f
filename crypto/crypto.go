package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	sha256 "github.com/minio/sha256-simd"
)

const (
	// HashSizeByte is the size of the default hash output in bytes.
	HashSizeByte = 32
	// HexSize is the length of a hex rendered digest of HashSizeByte bytes.
	HexSize = 2 * HashSizeByte
	// HashID identifies the default hash as a string.
	HashID = "SHA-256"
)

// Digest hashes all passed byte slices with SHA-256 and returns
// the lowercase hex rendering of the result.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) string {
	h := sha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ValidDigest reports whether d is a lowercase hex digest
// of HashSizeByte bytes.
func ValidDigest(d string) bool {
	return ValidHex(d, HashSizeByte)
}

// ValidHex reports whether d is the lowercase hex rendering
// of exactly size bytes.
func ValidHex(d string, size int) bool {
	if len(d) != 2*size {
		return false
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// MakeRand returns a random slice of bytes.
// It returns an error if there was a problem while generating
// the random slice.
// The system's PRNG output is hashed before it is returned,
// so the raw bytes from rand.Reader never leave this function.
func MakeRand() ([]byte, error) {
	r := make([]byte, HashSizeByte)
	if _, err := io.ReadFull(rand.Reader, r); err != nil {
		return nil, err
	}
	sum := sha256.Sum256(r)
	return sum[:], nil
}
