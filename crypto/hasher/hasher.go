// Package hasher keeps a registry of the hash functions an
// authenticated skip list can be built with. Implementations
// register themselves from an init function; importing
// one of the subpackages for its side effect is enough to make
// it available through New.
package hasher

import (
	"fmt"
	"sort"
	"sync"
)

// Hasher provides the hash function used for keys, leaf digests
// and interior digests.
type Hasher interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest hashes all passed byte slices and returns the lowercase
	// hex rendering of the result. The passed slices won't be mutated.
	Digest(ms ...[]byte) string
}

var (
	mu      sync.RWMutex
	hashers = make(map[string]func() Hasher)
)

// RegisterHasher registers a hasher for use.
func RegisterHasher(h string, f func() Hasher) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("RegisterHasher(%v) is already registered", h))
	}
	hashers[h] = f
}

// New returns a new instance of the hasher registered as h.
func New(h string) (Hasher, error) {
	mu.RLock()
	defer mu.RUnlock()
	if f, ok := hashers[h]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("Unknown hasher %q", h)
}

// Registered returns the ids of all registered hashers in sorted order.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	ids := make([]string, 0, len(hashers))
	for id := range hashers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
