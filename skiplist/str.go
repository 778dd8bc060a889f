package skiplist

import (
	"encoding/binary"
	"fmt"

	"github.com/coniks-sys/authskiplist/crypto/sign"
)

// A SignedRoot binds a root digest to the size of the list and the
// hasher it was computed with, under the signature of the list owner.
// A client checks the signature once and then verifies proofs against
// Root.
type SignedRoot struct {
	Root      string `cbor:"root"`
	Len       uint64 `cbor:"len"`
	Hasher    string `cbor:"hasher"`
	Signature []byte `cbor:"sig"`
}

// NewSignedRoot signs the current root of l with key.
func NewSignedRoot(key sign.PrivateKey, l *SkipList) *SignedRoot {
	sr := &SignedRoot{
		Root:   l.Root(),
		Len:    uint64(l.Len()),
		Hasher: l.Hasher().ID(),
	}
	sr.Signature = key.Sign(sr.Serialize())
	return sr
}

// Serialize returns the bytes covered by the signature:
// len || len(hasher) || hasher || root.
func (sr *SignedRoot) Serialize() []byte {
	buf := make([]byte, 0, 8+4+len(sr.Hasher)+len(sr.Root))
	buf = binary.BigEndian.AppendUint64(buf, sr.Len)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(sr.Hasher)))
	buf = append(buf, sr.Hasher...)
	buf = append(buf, sr.Root...)
	return buf
}

// Verify checks the signature of sr with pk.
func (sr *SignedRoot) Verify(pk sign.PublicKey) bool {
	return pk.Verify(sr.Serialize(), sr.Signature)
}

// MarshalBinary encodes the signed root for transmission.
func (sr *SignedRoot) MarshalBinary() ([]byte, error) {
	return encMode.Marshal((*signedRootWire)(sr))
}

// UnmarshalSignedRoot decodes a signed root written by MarshalBinary.
func UnmarshalSignedRoot(b []byte) (*SignedRoot, error) {
	sr := new(SignedRoot)
	if err := decMode.Unmarshal(b, (*signedRootWire)(sr)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSignedRoot, err)
	}
	return sr, nil
}
