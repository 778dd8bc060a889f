package skiplist

import "fmt"

// Validate walks the whole list and checks its structural invariants:
// parent links, strictly increasing leaf keys, routing keys, the
// priority order of tower nodes, and every stored digest.
// It returns an error wrapping ErrInvalidTree on the first violation.
func (l *SkipList) Validate() error {
	root := l.at(l.root)
	if root.parent != nilNode || root.isLeaf() {
		return fmt.Errorf("%w: bad root", ErrInvalidTree)
	}

	var leaves []nodeID
	var stack []nodeID
	visited := 0
	id := l.root
	for {
		for n := l.at(id); !n.isLeaf(); n = l.at(id) {
			if visited++; visited > len(l.nodes) {
				return fmt.Errorf("%w: cycle", ErrInvalidTree)
			}
			stack = append(stack, id)
			id = n.left
		}
		leaves = append(leaves, id)
		if len(stack) == 0 {
			break
		}
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := l.checkTower(id); err != nil {
			return err
		}
		id = l.at(id).right
	}

	if len(leaves) != l.count+2 {
		return fmt.Errorf("%w: %d leaves, want %d", ErrInvalidTree, len(leaves), l.count+2)
	}
	if leaves[0] != l.head || leaves[len(leaves)-1] != l.tail {
		return fmt.Errorf("%w: sentinels out of place", ErrInvalidTree)
	}
	for i, id := range leaves {
		n := l.at(id)
		if n.digest != LeafDigest(l.h, n.key, n.value) {
			return fmt.Errorf("%w: stale digest at leaf %s", ErrInvalidTree, n.key)
		}
		if i == 0 {
			continue
		}
		prev := leaves[i-1]
		if l.at(prev).key >= n.key {
			return fmt.Errorf("%w: leaf %s out of order", ErrInvalidTree, n.key)
		}
		if l.at(prev).right != id || n.left != prev {
			return fmt.Errorf("%w: leaf list broken at %s", ErrInvalidTree, n.key)
		}
	}
	return nil
}

func (l *SkipList) checkTower(id nodeID) error {
	n := l.at(id)
	for _, c := range []nodeID{n.left, n.right} {
		if c == nilNode {
			return fmt.Errorf("%w: missing child under %s", ErrInvalidTree, n.key)
		}
		cn := l.at(c)
		if cn.parent != id {
			return fmt.Errorf("%w: bad parent link under %s", ErrInvalidTree, n.key)
		}
		if cn.isLeaf() {
			continue
		}
		if cn.level > n.level || cn.level == n.level && n.left == c {
			return fmt.Errorf("%w: tower node %s (level %d) below %s (level %d)",
				ErrInvalidTree, cn.key, cn.level, n.key, n.level)
		}
	}

	// the routing key is the smallest key reachable through the right child
	m := n.right
	for !l.at(m).isLeaf() {
		m = l.at(m).left
	}
	if l.at(m).key != n.key {
		return fmt.Errorf("%w: routing key %s, smallest right key %s",
			ErrInvalidTree, n.key, l.at(m).key)
	}

	if n.digest != InteriorDigest(l.h, l.at(n.left).digest, l.at(n.right).digest) {
		return fmt.Errorf("%w: stale digest at tower node %s", ErrInvalidTree, n.key)
	}
	return nil
}
