package skiplist

import (
	"strings"
	"testing"
)

// hexKey returns a valid key made of c repeated.
func hexKey(c string) string {
	return strings.Repeat(c, 64)
}

// fixedLevels assigns the heights in m, and 0 to every other key.
func fixedLevels(m map[string]int) LevelPolicy {
	return LevelFunc(func(key string, _ int) int {
		return m[key]
	})
}

// towerOf returns the tower node whose routing key is key.
func towerOf(t *testing.T, l *SkipList, key string) nodeID {
	id := l.root
	for n := l.at(id); !n.isLeaf(); n = l.at(id) {
		if n.key == key {
			return id
		}
		if key >= n.key {
			id = n.right
		} else {
			id = n.left
		}
	}
	t.Fatalf("No tower node for %s", key)
	return nilNode
}

func insertBlocks(t *testing.T, l *SkipList, n int) {
	for i := 0; i < n; i++ {
		if err := l.InsertBlock(uint64(i), []byte{byte(i), byte(i >> 8)}); err != nil {
			t.Fatal(err)
		}
	}
}

func permutations(xs []string) [][]string {
	if len(xs) <= 1 {
		return [][]string{append([]string(nil), xs...)}
	}
	var out [][]string
	for i := range xs {
		rest := make([]string, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{xs[i]}, p...))
		}
	}
	return out
}
