package hasher

import (
	"testing"
)

var fakeHasherID = "fakeHasher"

type fake struct{}

func (fake) ID() string                 { return fakeHasherID }
func (fake) Size() int                  { return 1 }
func (fake) Digest(ms ...[]byte) string { return "00" }

func fakeHasher() Hasher {
	return fake{}
}

func TestHasherIsRegistered(t *testing.T) {
	if _, err := New(fakeHasherID); err != nil {
		RegisterHasher(fakeHasherID, fakeHasher)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected RegisterHasher to panic.")
		}
	}()
	RegisterHasher(fakeHasherID, fakeHasher)
}

func TestGetHasher(t *testing.T) {
	if _, err := New(fakeHasherID); err != nil {
		RegisterHasher(fakeHasherID, fakeHasher)
	}

	h, err := New(fakeHasherID)
	if err != nil {
		t.Fatal("Expect a hasher.")
	}
	if h.ID() != fakeHasherID {
		t.Errorf("Got hasher %s, want %s", h.ID(), fakeHasherID)
	}

	found := false
	for _, id := range Registered() {
		if id == fakeHasherID {
			found = true
		}
	}
	if !found {
		t.Error("Registered() doesn't list", fakeHasherID)
	}
}

func TestUnknownHasher(t *testing.T) {
	if _, err := New("no such hasher"); err == nil {
		t.Error("Expect an error for an unknown hasher.")
	}
}
