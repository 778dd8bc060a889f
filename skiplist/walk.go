package skiplist

import "context"

// NodeInfo describes a node visited by Walk.
type NodeInfo struct {
	Level  int
	Key    string
	Digest string
	Depth  int
	Leaf   bool
}

// Leaves calls fn for every stored block in key order, sentinels
// excluded. It stops at the first error returned by fn or when ctx
// is done.
func (l *SkipList) Leaves(ctx context.Context, fn func(key string, value []byte) error) error {
	for id := l.at(l.head).right; id != l.tail; id = l.at(id).right {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := l.at(id)
		if err := fn(n.key, n.value); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits every node of the tower in pre-order, root first,
// left subtree before right subtree. It uses an explicit stack, so
// the depth of the tower does not bound it.
func (l *SkipList) Walk(ctx context.Context, fn func(NodeInfo) error) error {
	type frame struct {
		id    nodeID
		depth int
	}
	stack := []frame{{l.root, 0}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := l.at(f.id)
		info := NodeInfo{
			Level:  n.level,
			Key:    n.key,
			Digest: n.digest,
			Depth:  f.depth,
			Leaf:   n.isLeaf(),
		}
		if err := fn(info); err != nil {
			return err
		}
		if !n.isLeaf() {
			stack = append(stack, frame{n.right, f.depth + 1}, frame{n.left, f.depth + 1})
		}
	}
	return nil
}
