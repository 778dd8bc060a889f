package skiplist

import "fmt"

// Direction tells on which side of the running digest a sibling sits.
type Direction uint8

const (
	// Left means the sibling is the left child: H(sibling || acc).
	Left Direction = iota + 1
	// Right means the sibling is the right child: H(acc || sibling).
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// A Step is one sibling digest on the path from a leaf to the root.
type Step struct {
	_         struct{} `cbor:",toarray"`
	Direction Direction
	Digest    string
}

// A Proof shows that Value is stored at Index. Steps are ordered from
// the leaf up to the root. A Proof holds no reference into the list
// it was produced from.
type Proof struct {
	Index uint64 `cbor:"index"`
	Key   string `cbor:"key"`
	Value []byte `cbor:"value"`
	Steps []Step `cbor:"steps"`
}

// ProveBlock returns a proof of inclusion for the block at index.
// The path is found by the same routing-key descent as Search.
// A path longer than MaxProofSteps returns ErrProofTooLong.
func (l *SkipList) ProveBlock(index uint64) (*Proof, error) {
	key := l.KeyForIndex(index)
	var steps []Step
	id := l.root
	for n := l.at(id); !n.isLeaf(); n = l.at(id) {
		if key >= n.key {
			steps = append(steps, Step{Direction: Left, Digest: l.at(n.left).digest})
			id = n.right
		} else {
			steps = append(steps, Step{Direction: Right, Digest: l.at(n.right).digest})
			id = n.left
		}
	}
	leaf := l.at(id)
	if leaf.key != key {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, index)
	}
	if len(steps) > MaxProofSteps {
		return nil, fmt.Errorf("%w: %d steps for block %d", ErrProofTooLong, len(steps), index)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return &Proof{
		Index: index,
		Key:   key,
		Value: append([]byte(nil), leaf.value...),
		Steps: steps,
	}, nil
}
