package skiplist

import (
	"errors"
	"strings"
	"testing"

	"github.com/coniks-sys/authskiplist/crypto/hasher/sha2"
	"github.com/coniks-sys/authskiplist/crypto/hasher/sha3"
)

func TestProofOrderedLeafToRoot(t *testing.T) {
	l := New(nil)
	if err := l.InsertBlock(0, []byte("only")); err != nil {
		t.Fatal(err)
	}
	p, err := l.ProveBlock(0)
	if err != nil {
		t.Fatal(err)
	}
	// root(head, T(max)(leaf, tail))
	want := []Step{
		{Direction: Right, Digest: l.at(l.tail).digest},
		{Direction: Left, Digest: l.at(l.head).digest},
	}
	if len(p.Steps) != len(want) {
		t.Fatal("Unexpected number of steps", len(p.Steps))
	}
	for i := range want {
		if p.Steps[i].Direction != want[i].Direction || p.Steps[i].Digest != want[i].Digest {
			t.Errorf("Step %d: got %v %s", i, p.Steps[i].Direction, p.Steps[i].Digest)
		}
	}
	if ok, err := Verify(p, l.Root()); err != nil || !ok {
		t.Fatal("Proof of inclusion verification failed.", err)
	}

	// reversing the steps must break the proof
	rev := *p
	rev.Steps = append([]Step(nil), p.Steps...)
	for i, j := 0, len(rev.Steps)-1; i < j; i, j = i+1, j-1 {
		rev.Steps[i], rev.Steps[j] = rev.Steps[j], rev.Steps[i]
	}
	if ok, _ := Verify(&rev, l.Root()); ok {
		t.Error("Steps applied root to leaf must not verify")
	}
}

func TestProofDoesNotAliasList(t *testing.T) {
	l := New(nil)
	insertBlocks(t, l, 5)
	p, err := l.ProveBlock(2)
	if err != nil {
		t.Fatal(err)
	}
	root := l.Root()
	p.Value[0] ^= 0xff
	v, _, _ := l.ReadBlock(2)
	if v[0] == p.Value[0] {
		t.Fatal("Changing a proof must not change the list")
	}
	if l.Root() != root {
		t.Fatal("Root changed")
	}
}

func TestProofFlippedDirection(t *testing.T) {
	l := New(nil)
	insertBlocks(t, l, 30)
	p, err := l.ProveBlock(11)
	if err != nil {
		t.Fatal(err)
	}
	for i := range p.Steps {
		q := *p
		q.Steps = append([]Step(nil), p.Steps...)
		if q.Steps[i].Direction == Left {
			q.Steps[i].Direction = Right
		} else {
			q.Steps[i].Direction = Left
		}
		if ok, err := Verify(&q, l.Root()); err != nil || ok {
			t.Error("Flipping step", i, "must not verify", err)
		}
	}
}

func TestProofWrongIndex(t *testing.T) {
	l := New(nil)
	insertBlocks(t, l, 10)
	p, err := l.ProveBlock(4)
	if err != nil {
		t.Fatal(err)
	}
	p.Index = 5
	if _, err := Verify(p, l.Root()); !errors.Is(err, ErrProofMalformed) {
		t.Error("Expect", ErrProofMalformed, "got", err)
	}
}

func TestMalformedProofs(t *testing.T) {
	l := New(nil)
	insertBlocks(t, l, 10)
	root := l.Root()
	good, err := l.ProveBlock(3)
	if err != nil {
		t.Fatal(err)
	}
	with := func(f func(p *Proof)) *Proof {
		p := *good
		p.Steps = append([]Step(nil), good.Steps...)
		f(&p)
		return &p
	}
	tooMany := make([]Step, MaxProofSteps+1)
	for i := range tooMany {
		tooMany[i] = Step{Direction: Left, Digest: good.Steps[0].Digest}
	}

	for name, p := range map[string]*Proof{
		"nil":            nil,
		"key mismatch":   with(func(p *Proof) { p.Key = hexKey("1") }),
		"no steps":       with(func(p *Proof) { p.Steps = nil }),
		"zero direction": with(func(p *Proof) { p.Steps[0].Direction = 0 }),
		"bad direction":  with(func(p *Proof) { p.Steps[0].Direction = 3 }),
		"short digest":   with(func(p *Proof) { p.Steps[0].Digest = "abcd" }),
		"upper digest":   with(func(p *Proof) { p.Steps[0].Digest = strings.ToUpper(p.Steps[0].Digest) }),
		"too many steps": with(func(p *Proof) { p.Steps = tooMany }),
	} {
		ok, err := Verify(p, root)
		if ok || !errors.Is(err, ErrProofMalformed) {
			t.Errorf("%s: expect %v, got %v, %v", name, ErrProofMalformed, ok, err)
		}
	}

	for _, r := range []string{"", "abc", strings.ToUpper(root), root + "00"} {
		if _, err := Verify(good, r); !errors.Is(err, ErrMalformedDigest) {
			t.Errorf("Root %q: expect %v, got %v", r, ErrMalformedDigest, err)
		}
	}
}

func TestVerifyWithHasher(t *testing.T) {
	l := New(&Options{Hasher: sha3.New()})
	insertBlocks(t, l, 20)
	if err := l.Validate(); err != nil {
		t.Fatal(err)
	}
	p, err := l.ProveBlock(9)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := VerifyWith(sha3.New(), p, l.Root()); err != nil || !ok {
		t.Fatal("Proof of inclusion verification failed.", err)
	}
	if _, err := VerifyWith(sha2.New(), p, l.Root()); !errors.Is(err, ErrProofMalformed) {
		t.Error("Expect", ErrProofMalformed, "got", err)
	}
	if l.Root() == New(nil).Root() {
		t.Error("Different hashers must give different roots")
	}
}

func TestProveBlockTooLong(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a degenerate list")
	}
	flat := LevelFunc(func(string, int) int { return 0 })
	l := New(&Options{Levels: flat})
	n := MaxProofSteps + 1
	insertBlocks(t, l, n)

	tooLong := 0
	for i := 0; i < n; i++ {
		p, err := l.ProveBlock(uint64(i))
		if errors.Is(err, ErrProofTooLong) {
			tooLong++
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		if len(p.Steps) > MaxProofSteps {
			t.Fatalf("Block %d: %d steps", i, len(p.Steps))
		}
		if i%64 != 0 {
			continue
		}
		if ok, err := Verify(p, l.Root()); err != nil || !ok {
			t.Fatal("Block", i, "does not verify", err)
		}
	}
	if tooLong == 0 {
		t.Error("Expect some paths longer than", MaxProofSteps)
	}
}
