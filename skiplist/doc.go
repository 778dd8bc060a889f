/*
Package skiplist implements an authenticated skip list.

The list stores key/value pairs ordered by the lexicographic order of their
hex keys, and keeps a single root digest that commits to the whole data set.
Lookups can be answered with a Proof: the leaf value and the sibling digests
along the search path, which a client recombines and compares to a root
digest it already trusts. Verification needs nothing but the proof and that
root.

Tower

Nodes live in an arena and refer to each other by index. Leaves (level 0)
form an ordered list bounded by two permanent sentinels, MinKey and MaxKey.
Every leaf except the left sentinel owns one tower node whose routing key is
the leaf's key and whose level is the leaf's height plus one. A tower node
has two children; the smallest key reachable through its right child is its
routing key. Tower nodes are arranged by priority: a higher level is closer
to the root, and of two nodes on the same level the one with the smaller
routing key is the ancestor. Insert splices the new leaf after its
predecessor and rotates the new tower node up until this order holds again.

Heights are geometric with p = 1/2. KeyLevels derives them from the key, so
the shape of the tower, and with it the root digest, depends only on the
stored set and not on the order of insertion. RandomLevels draws them from a
PRNG instead, capped by the logarithm of the number of stored leaves.

Digests

A leaf digest is H('L' || key || value). A tower node digest is
H(left || right) over the hex digests of its children. Every mutation
rehashes the nodes it touched and the path up to the root before it returns.

A SkipList is not safe for concurrent use; see the blockstore package for a
locked wrapper.
*/
package skiplist
