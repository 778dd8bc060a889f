package crypto

import (
	"crypto/rand"
	"errors"
	"strings"
	"testing"
)

func TestDigestVectors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"0", "5feceb66ffc86f38d952786c6d696c79c2dbc239dd4e91b46729d73a27fb57e9"},
	} {
		if got := Digest([]byte(tc.in)); got != tc.want {
			t.Errorf("Digest(%q): %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDigestConcatenates(t *testing.T) {
	if Digest([]byte("ab"), []byte("c")) != Digest([]byte("abc")) {
		t.Error("Digest of parts must equal digest of the concatenation")
	}
	if !ValidDigest(Digest([]byte("x"))) {
		t.Error("Digest output is not a valid digest")
	}
}

func TestValidDigest(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{strings.Repeat("0", HexSize), true},
		{strings.Repeat("f", HexSize), true},
		{strings.Repeat("F", HexSize), false},
		{strings.Repeat("0", HexSize-1), false},
		{strings.Repeat("0", HexSize+2), false},
		{strings.Repeat("g", HexSize), false},
		{"", false},
	} {
		if got := ValidDigest(tc.in); got != tc.want {
			t.Errorf("ValidDigest(%q): %v, want %v", tc.in, got, tc.want)
		}
	}
}

type testErrorRandReader struct{}

func (er testErrorRandReader) Read([]byte) (int, error) {
	return 0, errors.New("not enough entropy")
}

func TestMakeRand(t *testing.T) {
	r, err := MakeRand()
	if err != nil {
		t.Fatal(err)
	}
	if len(r) != HashSizeByte {
		t.Fatal("Looks like the PRNG output wasn't hashed.")
	}
	orig := rand.Reader
	rand.Reader = testErrorRandReader{}
	defer func() { rand.Reader = orig }()
	if _, err = MakeRand(); err == nil {
		t.Fatal("No error returned")
	}
}
