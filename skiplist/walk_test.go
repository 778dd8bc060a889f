package skiplist

import (
	"context"
	"errors"
	"testing"
)

func TestLeaves(t *testing.T) {
	l := New(nil)
	insertBlocks(t, l, 40)
	var keys []string
	err := l.Leaves(context.Background(), func(key string, _ []byte) error {
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 40 {
		t.Fatal("Expect 40 leaves, got", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatal("Leaves out of order")
		}
	}

	stop := errors.New("stop")
	n := 0
	err = l.Leaves(context.Background(), func(string, []byte) error {
		if n++; n == 3 {
			return stop
		}
		return nil
	})
	if err != stop || n != 3 {
		t.Error("Expect Leaves to stop at the first error")
	}
}

func TestWalk(t *testing.T) {
	l := New(nil)
	insertBlocks(t, l, 25)
	leaves, towers := 0, 0
	err := l.Walk(context.Background(), func(info NodeInfo) error {
		if info.Depth == 0 && info.Digest != l.Root() {
			t.Error("Walk must start at the root")
		}
		if info.Leaf {
			leaves++
		} else {
			towers++
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if leaves != 27 || towers != 26 {
		t.Errorf("Got %d leaves and %d tower nodes", leaves, towers)
	}
}

func TestWalkCanceled(t *testing.T) {
	l := New(nil)
	insertBlocks(t, l, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Walk(ctx, func(NodeInfo) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Error("Expect", context.Canceled, "got", err)
	}
	if err := l.Leaves(ctx, func(string, []byte) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Error("Expect", context.Canceled, "got", err)
	}
}
