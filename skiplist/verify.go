package skiplist

import (
	"fmt"

	"github.com/coniks-sys/authskiplist/crypto"
	"github.com/coniks-sys/authskiplist/crypto/hasher"
	"github.com/coniks-sys/authskiplist/crypto/hasher/sha2"
)

// MaxProofSteps bounds the number of steps a well-formed proof may carry.
const MaxProofSteps = 4096

// Verify checks proof against a trusted root digest with SHA-256.
// See VerifyWith.
func Verify(proof *Proof, trustedRoot string) (bool, error) {
	return VerifyWith(sha2.New(), proof, trustedRoot)
}

// VerifyWith recombines the leaf digest of proof with each recorded
// sibling, in order and on the recorded side, and reports whether the
// result equals trustedRoot. A mismatch means the value was altered or
// the root is stale; the two cannot be told apart.
// A structurally invalid proof returns ErrProofMalformed.
func VerifyWith(h hasher.Hasher, proof *Proof, trustedRoot string) (bool, error) {
	if !crypto.ValidHex(trustedRoot, h.Size()) {
		return false, fmt.Errorf("%w: %q", ErrMalformedDigest, trustedRoot)
	}
	if err := checkProof(h, proof); err != nil {
		return false, err
	}
	acc := LeafDigest(h, proof.Key, proof.Value)
	for _, s := range proof.Steps {
		if s.Direction == Left {
			acc = InteriorDigest(h, s.Digest, acc)
		} else {
			acc = InteriorDigest(h, acc, s.Digest)
		}
	}
	return acc == trustedRoot, nil
}

func checkProof(h hasher.Hasher, proof *Proof) error {
	if proof == nil {
		return fmt.Errorf("%w: nil proof", ErrProofMalformed)
	}
	if proof.Key != IndexKey(h, proof.Index) {
		return fmt.Errorf("%w: key does not belong to index %d", ErrProofMalformed, proof.Index)
	}
	if len(proof.Steps) == 0 || len(proof.Steps) > MaxProofSteps {
		return fmt.Errorf("%w: %d steps", ErrProofMalformed, len(proof.Steps))
	}
	for i, s := range proof.Steps {
		if s.Direction != Left && s.Direction != Right {
			return fmt.Errorf("%w: step %d has direction %v", ErrProofMalformed, i, s.Direction)
		}
		if !crypto.ValidHex(s.Digest, h.Size()) {
			return fmt.Errorf("%w: step %d has digest %q", ErrProofMalformed, i, s.Digest)
		}
	}
	return nil
}
