package skiplist

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Proofs and signed roots travel as deterministic CBOR. Every value,
// the raw leaf payload included, is length prefixed.

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements:  MaxProofSteps,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// proofWire and signedRootWire carry the CBOR layout of Proof and
// SignedRoot without their MarshalBinary methods, which the encoder
// would otherwise call back into.
type (
	proofWire      Proof
	signedRootWire SignedRoot
)

// MarshalBinary encodes the proof for transmission.
func (p *Proof) MarshalBinary() ([]byte, error) {
	return encMode.Marshal((*proofWire)(p))
}

// UnmarshalProof decodes a proof written by MarshalBinary.
// Bytes that do not decode to a proof return ErrProofMalformed.
// The decoded proof is checked further by Verify.
func UnmarshalProof(b []byte) (*Proof, error) {
	p := new(Proof)
	if err := decMode.Unmarshal(b, (*proofWire)(p)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProofMalformed, err)
	}
	return p, nil
}
