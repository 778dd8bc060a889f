package skiplist

import "math"

// nodeID addresses a node in the arena.
type nodeID int32

const nilNode nodeID = -1

// node is either a leaf (level 0) or a tower node (level >= 1).
// For a leaf, left and right link the neighbouring leaves and value
// holds the block. For a tower node, left and right are its children
// and key is its routing key.
type node struct {
	level  int
	key    string
	value  []byte
	digest string
	left   nodeID
	right  nodeID
	parent nodeID
}

func (n *node) isLeaf() bool {
	return n.level == 0
}

// arena owns every node of a list. Nodes are never freed.
type arena struct {
	nodes []node
}

func (a *arena) alloc(n node) nodeID {
	id := toNodeID(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return id
}

// toNodeID panics once the arena outgrows the nodeID range.
func toNodeID(i int) nodeID {
	if i < 0 || int64(i) > math.MaxInt32 {
		panic(ErrInvalidTree)
	}
	return nodeID(i)
}

// at returns the node stored at id. The pointer is only valid
// until the next alloc.
func (a *arena) at(id nodeID) *node {
	if id == nilNode {
		panic(ErrInvalidTree)
	}
	return &a.nodes[id]
}

func (a *arena) clone() arena {
	return arena{nodes: append([]node(nil), a.nodes...)}
}
