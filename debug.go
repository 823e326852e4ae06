package boxtree

import (
	"fmt"
	"io"
	"strings"
)

// Stats holds structural metrics for a tree, gathered by [Tree.Stats].
type Stats struct {
	Nodes    int // total node count, root included
	Leaves   int // nodes with no children
	Elements int // total stored elements
	Depth    int // deepest level that exists, root = 0
}

// Stats walks the tree and returns its structural metrics.
func (t *Tree[T]) Stats() Stats {
	s := Stats{}
	collectStats(t, 0, &s)
	return s
}

func collectStats[T Collidable](t *Tree[T], depth int, s *Stats) {
	s.Nodes++
	s.Elements += len(t.values)
	if depth > s.Depth {
		s.Depth = depth
	}
	if t.IsLeaf() {
		s.Leaves++
		return
	}
	for _, c := range t.children {
		collectStats(c, depth+1, s)
	}
}

// Dump writes an indented description of the tree structure to w: one line
// per node with its zone, followed by the boxes of its locally-held
// elements. Intended for debugging; the format is not stable.
func (t *Tree[T]) Dump(w io.Writer) {
	dump(t, w, 0)
}

func dump[T Collidable](t *Tree[T], w io.Writer, depth int) {
	indent := strings.Repeat("  ", depth)
	state := "leaf"
	if !t.IsLeaf() {
		state = "branch"
	}
	_, _ = fmt.Fprintf(w, "%s%s zone=(%d,%d %dx%d) values=%d\n",
		indent, state, t.zone.X, t.zone.Y, t.zone.W, t.zone.H, len(t.values))
	for _, v := range t.values {
		b := v.BoundingBox()
		_, _ = fmt.Fprintf(w, "%s  - (%d,%d %dx%d)\n", indent, b.X, b.Y, b.W, b.H)
	}
	for _, c := range t.children {
		dump(c, w, depth+1)
	}
}
