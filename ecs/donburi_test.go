package ecs

import (
	"testing"

	"github.com/phanxgames/boxtree"

	"github.com/yohamta/donburi"
)

func TestNewIndex(t *testing.T) {
	world := donburi.NewWorld()
	ix := NewIndex(world, 1, 4, boxtree.Box{W: 256, H: 256})
	if ix.Tree() == nil {
		t.Fatal("NewIndex returned an index with no tree")
	}
	if got := ix.Tree().Len(); got != 0 {
		t.Errorf("tree holds %d elements before Rebuild, want 0", got)
	}
}

func TestIndexRebuild(t *testing.T) {
	world := donburi.NewWorld()
	Spawn(world, boxtree.Box{X: 1, Y: 1, W: 10, H: 10})
	Spawn(world, boxtree.Box{X: 200, Y: 10, W: 10, H: 10})
	Spawn(world, boxtree.Box{X: 120, Y: 10, W: 40, H: 10}) // straddles the midline

	ix := NewIndex(world, 1, 4, boxtree.Box{W: 256, H: 256})
	tree := ix.Rebuild()

	if got := tree.Len(); got != 3 {
		t.Fatalf("tree holds %d elements, want 3", got)
	}
	if tree.IsLeaf() {
		t.Fatal("tree did not split for quadrant-sized entities")
	}
	if got := len(tree.Values()); got != 1 {
		t.Errorf("root retains %d elements, want the straddler only", got)
	}
	if ix.Tree() != tree {
		t.Error("Tree() does not return the rebuilt tree")
	}
}

func TestIndexSeesMovedEntities(t *testing.T) {
	world := donburi.NewWorld()
	entry := Spawn(world, boxtree.Box{X: 1, Y: 1, W: 10, H: 10})
	Spawn(world, boxtree.Box{X: 200, Y: 10, W: 10, H: 10})

	ix := NewIndex(world, 1, 4, boxtree.Box{W: 256, H: 256})
	tree := ix.Rebuild()
	if got := tree.Children()[boxtree.TopLeft].Len(); got != 1 {
		t.Fatalf("TopLeft subtree holds %d entities, want 1", got)
	}

	// A movement system writes Bounds; the live tree sees the new box
	// through the shared storage, and a rebuild re-files the entity.
	Bounds.Get(entry).Translate(0, 200)
	tree = ix.Rebuild()

	if got := tree.Children()[boxtree.TopLeft].Len(); got != 0 {
		t.Errorf("TopLeft subtree holds %d entities after move, want 0", got)
	}
	if got := tree.Children()[boxtree.BottomLeft].Len(); got != 1 {
		t.Errorf("BottomLeft subtree holds %d entities after move, want 1", got)
	}
}

func TestEntityBoundingBoxIsLive(t *testing.T) {
	world := donburi.NewWorld()
	entry := Spawn(world, boxtree.Box{X: 5, Y: 5, W: 10, H: 10})

	e := &Entity{Entry: entry, box: Bounds.Get(entry)}
	Bounds.Get(entry).Translate(3, 0)

	if got := e.BoundingBox().X; got != 8 {
		t.Errorf("BoundingBox().X = %d after component write, want 8", got)
	}
}
