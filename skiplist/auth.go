package skiplist

import "github.com/coniks-sys/authskiplist/crypto/hasher"

// LeafIdentifier is the domain separation prefix for leaf digests.
const LeafIdentifier = 'L'

// LeafDigest computes the digest of a leaf as H('L' || key || value).
// Keys are fixed width, so the encoding is unambiguous.
func LeafDigest(h hasher.Hasher, key string, value []byte) string {
	return h.Digest([]byte{LeafIdentifier}, []byte(key), value)
}

// InteriorDigest computes the digest of a tower node as H(left || right).
func InteriorDigest(h hasher.Hasher, left, right string) string {
	return h.Digest([]byte(left), []byte(right))
}

// rehash recomputes the digest of id alone from its value
// or from its children's current digests.
func (l *SkipList) rehash(id nodeID) {
	n := l.at(id)
	if n.isLeaf() {
		n.digest = LeafDigest(l.h, n.key, n.value)
		return
	}
	if n.left == nilNode || n.right == nilNode {
		panic(ErrInvalidTree)
	}
	n.digest = InteriorDigest(l.h, l.at(n.left).digest, l.at(n.right).digest)
}

// updateHash rehashes id and then every ancestor of id up to the root.
// Together with rehash it is the only code path that writes digests.
func (l *SkipList) updateHash(id nodeID) {
	for id != nilNode {
		l.rehash(id)
		id = l.at(id).parent
	}
}
