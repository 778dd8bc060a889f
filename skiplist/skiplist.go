package skiplist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coniks-sys/authskiplist/crypto"
	"github.com/coniks-sys/authskiplist/crypto/hasher"
	"github.com/coniks-sys/authskiplist/crypto/hasher/sha2"
)

// InsertEvent describes a completed insertion.
type InsertEvent struct {
	Key       string
	Level     int
	Rotations int
	Root      string
	Len       int
}

// An Observer is notified after every successful Insert.
// It must not call back into the list.
type Observer interface {
	Inserted(ev InsertEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev InsertEvent)

func (f ObserverFunc) Inserted(ev InsertEvent) {
	f(ev)
}

// Options configure a new SkipList. A nil Options or zero fields
// select SHA-256 and KeyLevels.
type Options struct {
	Hasher   hasher.Hasher
	Levels   LevelPolicy
	Observer Observer
}

// SkipList is an authenticated skip list over hex keys.
type SkipList struct {
	arena
	h        hasher.Hasher
	levels   LevelPolicy
	observer Observer

	root  nodeID
	head  nodeID // MinKey sentinel
	tail  nodeID // MaxKey sentinel
	count int
}

// New returns an empty list holding only the two sentinels
// under a single tower node.
func New(opts *Options) *SkipList {
	if opts == nil {
		opts = new(Options)
	}
	l := &SkipList{
		h:        opts.Hasher,
		levels:   opts.Levels,
		observer: opts.Observer,
	}
	if l.h == nil {
		l.h = sha2.New()
	}
	if l.levels == nil {
		l.levels = KeyLevels(l.h)
	}

	minKey, maxKey := MinKey(l.h), MaxKey(l.h)
	l.head = l.alloc(node{key: minKey, value: []byte(minKey), left: nilNode, right: nilNode})
	l.tail = l.alloc(node{key: maxKey, value: []byte(maxKey), left: l.head, right: nilNode})
	l.root = l.alloc(node{level: 1, key: maxKey, left: l.head, right: l.tail, parent: nilNode})
	l.at(l.head).right = l.tail
	l.at(l.head).parent = l.root
	l.at(l.tail).parent = l.root

	l.rehash(l.head)
	l.rehash(l.tail)
	l.updateHash(l.root)
	return l
}

// MinKey returns the key of the left sentinel for hasher h.
func MinKey(h hasher.Hasher) string {
	return strings.Repeat("0", 2*h.Size())
}

// MaxKey returns the key of the right sentinel for hasher h.
func MaxKey(h hasher.Hasher) string {
	return strings.Repeat("f", 2*h.Size())
}

// IndexKey returns the key of the block with the given index,
// the digest of its decimal representation.
func IndexKey(h hasher.Hasher, index uint64) string {
	return h.Digest([]byte(strconv.FormatUint(index, 10)))
}

// KeyForIndex returns the key the block with the given index is stored under.
func (l *SkipList) KeyForIndex(index uint64) string {
	return IndexKey(l.h, index)
}

// Hasher returns the hasher the list was built with.
func (l *SkipList) Hasher() hasher.Hasher {
	return l.h
}

// Root returns the digest authenticating the whole list.
func (l *SkipList) Root() string {
	return l.at(l.root).digest
}

// Len returns the number of stored blocks, not counting the sentinels.
func (l *SkipList) Len() int {
	return l.count
}

// Height returns the level of the root tower node.
func (l *SkipList) Height() int {
	return l.at(l.root).level
}

func (l *SkipList) validKey(key string) bool {
	return crypto.ValidHex(key, l.h.Size()) &&
		key > l.at(l.head).key && key < l.at(l.tail).key
}

// search descends from the root by routing key and returns the leaf
// holding the greatest key <= key.
func (l *SkipList) search(key string) nodeID {
	id := l.root
	for n := l.at(id); !n.isLeaf(); n = l.at(id) {
		if key >= n.key {
			id = n.right
		} else {
			id = n.left
		}
	}
	for {
		next := l.at(id).right
		if next == nilNode || l.at(next).key > key {
			return id
		}
		id = next
	}
}

// Search returns the key of the leaf at the insertion gap for key,
// that is the greatest stored key (or MinKey) not above key,
// and whether it equals key.
func (l *SkipList) Search(key string) (string, bool) {
	k := l.at(l.search(key)).key
	return k, k == key
}

// Get returns a copy of the value stored under key.
func (l *SkipList) Get(key string) ([]byte, error) {
	id := l.search(key)
	n := l.at(id)
	if n.key != key || id == l.head || id == l.tail {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return append([]byte(nil), n.value...), nil
}

// ReadBlock returns a copy of the block stored at index.
func (l *SkipList) ReadBlock(index uint64) ([]byte, bool, error) {
	v, err := l.Get(l.KeyForIndex(index))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return v, true, nil
}

// InsertBlock stores block at index, under KeyForIndex(index).
func (l *SkipList) InsertBlock(index uint64, block []byte) error {
	return l.Insert(l.KeyForIndex(index), block)
}

// Insert stores a copy of value under key. It fails with
// ErrMalformedKey or ErrDuplicateKey without touching the list.
func (l *SkipList) Insert(key string, value []byte) error {
	if !l.validKey(key) {
		return fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	pred := l.search(key)
	if l.at(pred).key == key {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	level := l.levels.Level(key, l.count)
	if level < 0 {
		level = 0
	}

	// splice the leaf into the ordered leaf list
	succ := l.at(pred).right
	leaf := l.alloc(node{
		key:   key,
		value: append([]byte(nil), value...),
		left:  pred,
		right: succ,
	})
	l.at(pred).right = leaf
	if succ != nilNode {
		l.at(succ).left = leaf
	}

	// the new tower node takes the predecessor's slot
	// and holds the predecessor and the new leaf
	parent := l.at(pred).parent
	tower := l.alloc(node{
		level:  level + 1,
		key:    key,
		left:   pred,
		right:  leaf,
		parent: parent,
	})
	l.replaceChild(parent, pred, tower)
	l.at(pred).parent = tower
	l.at(leaf).parent = tower
	l.rehash(leaf)
	l.rehash(tower)

	rotations := 0
	for {
		p := l.at(tower).parent
		if p == nilNode || !l.outranks(tower, p) {
			break
		}
		l.rotateUp(tower)
		l.rehash(p)
		rotations++
	}
	l.updateHash(tower)
	l.count++

	if l.observer != nil {
		l.observer.Inserted(InsertEvent{
			Key:       key,
			Level:     level,
			Rotations: rotations,
			Root:      l.Root(),
			Len:       l.count,
		})
	}
	return nil
}

// outranks reports whether the tower node id belongs above its parent p:
// its level is higher, or the levels are equal and id is p's left child.
// Of two tower nodes sharing a level in one run, the left one is
// always the ancestor and the right one sits in its right subtree.
func (l *SkipList) outranks(id, p nodeID) bool {
	n, pn := l.at(id), l.at(p)
	switch {
	case n.level > pn.level:
		return true
	case n.level == pn.level:
		return pn.left == id
	}
	return false
}

// rotateUp swaps the tower node id with its parent, keeping the
// in-order sequence of leaves and routing keys.
func (l *SkipList) rotateUp(id nodeID) {
	n := l.at(id)
	p := n.parent
	pn := l.at(p)
	g := pn.parent

	var moved nodeID
	if pn.left == id {
		moved = n.right
		pn.left = moved
		n.right = p
	} else {
		moved = n.left
		pn.right = moved
		n.left = p
	}
	l.at(moved).parent = p
	pn.parent = id
	n.parent = g
	if g == nilNode {
		l.root = id
	} else {
		l.replaceChild(g, p, id)
	}
}

func (l *SkipList) replaceChild(p, from, to nodeID) {
	pn := l.at(p)
	switch from {
	case pn.left:
		pn.left = to
	case pn.right:
		pn.right = to
	default:
		panic(ErrInvalidTree)
	}
}

// Clone returns a copy of the list l. Any later change to l
// does not affect the clone, and vice versa. The clone shares
// the hasher and observer. A RandomLevels policy is copied with
// its state, so both lists draw the same levels from here on.
// Any other policy is shared and must be safe for that use.
func (l *SkipList) Clone() *SkipList {
	c := *l
	c.arena = l.arena.clone()
	if p, ok := l.levels.(interface{ clone() LevelPolicy }); ok {
		c.levels = p.clone()
	}
	return &c
}
