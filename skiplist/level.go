package skiplist

import (
	"math/bits"
	"math/rand/v2"

	"github.com/coniks-sys/authskiplist/crypto/hasher"
)

// A LevelPolicy assigns the height of a new leaf's tower.
// Heights are geometric: each level is gained with probability 1/2.
// A policy that does not spread heights this way, such as a constant,
// lets paths grow linearly with the number of leaves; ProveBlock
// refuses paths longer than MaxProofSteps.
type LevelPolicy interface {
	// Level returns the height for key, given the number of
	// leaves n stored before the insertion.
	Level(key string, n int) int
}

// LevelFunc adapts a function to the LevelPolicy interface.
type LevelFunc func(key string, n int) int

func (f LevelFunc) Level(key string, n int) int {
	return f(key, n)
}

type keyLevels struct {
	h hasher.Hasher
}

// KeyLevels returns the default policy: the height of a key is the
// number of leading zero bits of H(key). Equal sets of keys always
// get equal towers, whatever the order they were inserted in.
// Heights are bounded only by the hash width.
func KeyLevels(h hasher.Hasher) LevelPolicy {
	return keyLevels{h: h}
}

func (p keyLevels) Level(key string, _ int) int {
	return leadingZeroBits(p.h.Digest([]byte(key)))
}

// leadingZeroBits counts the leading zero bits of a hex digest.
func leadingZeroBits(d string) int {
	total := 0
	for i := 0; i < len(d); i++ {
		v := hexNibble(d[i])
		if v == 0 {
			total += 4
			continue
		}
		return total + bits.LeadingZeros8(v) - 4
	}
	return total
}

func hexNibble(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

type randomLevels struct {
	src *rand.PCG
	rnd *rand.Rand
}

// RandomLevels returns a policy that flips a fair coin per level,
// seeded with seed. The height is capped at log2(n+1)+1, so the cap
// grows with the number of stored leaves. Root digests then depend on
// the insertion history, not only on the stored set.
func RandomLevels(seed uint64) LevelPolicy {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &randomLevels{src: src, rnd: rand.New(src)}
}

// clone returns a policy that continues from the current state
// of p independently of it.
func (p *randomLevels) clone() LevelPolicy {
	src := *p.src
	return &randomLevels{src: &src, rnd: rand.New(&src)}
}

func (p *randomLevels) Level(_ string, n int) int {
	limit := MaxRandomLevel(n)
	level := 0
	for level < limit && p.rnd.IntN(2) == 1 {
		level++
	}
	return level
}

// MaxRandomLevel is the height cap RandomLevels uses with n stored leaves.
func MaxRandomLevel(n int) int {
	return bits.Len(uint(n+1)) + 1
}
