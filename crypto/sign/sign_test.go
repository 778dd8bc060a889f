package sign

import (
	"bytes"
	"errors"
	"testing"
)

// copied from official crypto.ed25519 tests
func TestVerifySignature(t *testing.T) {
	key, err := GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("test message")
	sig := key.Sign(message)

	pk, ok := key.Public()
	if !ok {
		t.Errorf("bad PK?")
	}

	if !pk.Verify(message, sig) {
		t.Errorf("valid signature rejected")
	}

	wrongMessage := []byte("wrong message")
	if pk.Verify(wrongMessage, sig) {
		t.Errorf("signature of different message accepted")
	}
}

func TestDeterministicKey(t *testing.T) {
	seed := []byte("deterministic tests need 256 bit")
	k1, err := GenerateKey(bytes.NewReader(seed))
	if err != nil {
		t.Fatal(err)
	}
	k2, err := GenerateKey(bytes.NewReader(seed))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("Same seed must give the same key")
	}
}

type testErrorRandReader struct{}

func (er testErrorRandReader) Read([]byte) (int, error) {
	return 0, errors.New("not enough entropy")
}

func TestGenerateKeyError(t *testing.T) {
	if _, err := GenerateKey(testErrorRandReader{}); err == nil {
		t.Fatal("No error returned")
	}
}

func TestKeyLengths(t *testing.T) {
	if _, err := NewPrivateKey(make([]byte, 3)); err != ErrBadKeyLength {
		t.Error("Expect", ErrBadKeyLength, "got", err)
	}
	if _, err := NewPublicKey(make([]byte, PublicKeySize+1)); err != ErrBadKeyLength {
		t.Error("Expect", ErrBadKeyLength, "got", err)
	}
	if PublicKey(make([]byte, 5)).Verify([]byte("m"), make([]byte, 64)) {
		t.Error("Short public key must not verify")
	}
}
