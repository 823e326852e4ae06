package boxtree

import (
	"fmt"
	"image/color"
)

// Collidable is the one capability every stored element must provide.
// BoundingBox returns a pointer to the element's box; the tree reads it for
// placement and re-filing but never moves or copies the element's storage.
type Collidable interface {
	BoundingBox() *Box
}

// Dynamic is an optional capability for elements that move or otherwise
// change over time. Update advances the element by dt seconds and reports
// whether the element mutated.
type Dynamic interface {
	Update(dt float64) bool
}

// Drawable is an optional capability for elements that can render themselves
// against a Target.
type Drawable interface {
	Draw(target Target) error
}

// Target is an opaque render sink. The tree receives a Target for the
// duration of a Draw call and never creates or owns one. Canvas is the
// Ebitengine-backed implementation.
type Target interface {
	// StrokeRect draws the one-pixel outline of b.
	StrokeRect(b Box, c color.Color) error
	// FillRect draws b filled with c.
	FillRect(b Box, c color.Color) error
}

// ZoneOutline is the color used for node zone outlines during Draw.
var ZoneOutline color.Color = color.White

// Default configuration used by NewDefault and the demos.
const (
	DefaultMaxValues = 1
	DefaultMaxDepth  = 4
	DefaultZoneSize  = 256
)

// Tree is a quadtree: a spatial collection of bounded elements.
//
// A node holding more than maxValues elements splits into four children, one
// per quadrant of its zone. An element that does not fit entirely inside any
// single quadrant is kept in the closest big-enough parent node. Nodes are
// never merged or destroyed during the tree's lifetime.
//
// A Tree must not be used from multiple goroutines without external
// serialization at the root.
type Tree[T Collidable] struct {
	zone      Box
	maxValues int
	maxDepth  int
	children  []*Tree[T] // empty (leaf) or exactly 4, in Quadrants order
	values    []T
}

// New creates a tree over the given zone. A node splits once it holds
// maxValues elements, up to maxDepth levels below the root; nodes at depth
// budget 0 never split and act as unbounded buckets.
//
// Panics if maxValues < 1, maxDepth < 0, or the zone extent is negative:
// such a tree has no defined splitting behavior, and misconfiguration is a
// programming error.
func New[T Collidable](maxValues, maxDepth int, zone Box) *Tree[T] {
	if maxValues < 1 {
		panic(fmt.Sprintf("boxtree: maxValues must be >= 1, got %d", maxValues))
	}
	if maxDepth < 0 {
		panic(fmt.Sprintf("boxtree: maxDepth must be >= 0, got %d", maxDepth))
	}
	if zone.W < 0 || zone.H < 0 {
		panic(fmt.Sprintf("boxtree: zone extent must be non-negative, got %dx%d", zone.W, zone.H))
	}
	return &Tree[T]{
		zone:      zone,
		maxValues: maxValues,
		maxDepth:  maxDepth,
	}
}

// NewDefault creates a tree with the default configuration:
// one element per node, four levels of splitting, zone (0,0,256,256).
func NewDefault[T Collidable]() *Tree[T] {
	return New[T](DefaultMaxValues, DefaultMaxDepth, Box{0, 0, DefaultZoneSize, DefaultZoneSize})
}

// newChild creates the child tree focused on quadrant q.
// A child has one less level of depth budget than its parent.
func (t *Tree[T]) newChild(q Quadrant) *Tree[T] {
	return &Tree[T]{
		zone:      QuadrantBox(t.zone, q),
		maxValues: t.maxValues,
		maxDepth:  t.maxDepth - 1,
	}
}

// IsLeaf reports whether this node has no children yet.
func (t *Tree[T]) IsLeaf() bool {
	return len(t.children) == 0
}

// Zone returns the box this node is responsible for.
func (t *Tree[T]) Zone() Box {
	return t.zone
}

// Children returns the child nodes in Quadrants order, or an empty slice for
// a leaf. The returned slice MUST NOT be mutated by the caller.
func (t *Tree[T]) Children() []*Tree[T] {
	return t.children
}

// Values returns the elements held directly by this node, in insertion
// order. The returned slice MUST NOT be mutated by the caller.
func (t *Tree[T]) Values() []T {
	return t.values
}

// Len returns the total number of elements stored in this node and all its
// descendants.
func (t *Tree[T]) Len() int {
	n := len(t.values)
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}

// fits reports the first quadrant of this node's zone that fully contains
// v's bounding box, testing in Quadrants order. ok is false when v straddles
// a quadrant boundary or falls on the seam between quadrants.
func (t *Tree[T]) fits(v T) (q Quadrant, ok bool) {
	b := *v.BoundingBox()
	for _, q := range Quadrants {
		if b.IsInside(QuadrantBox(t.zone, q)) {
			return q, true
		}
	}
	return 0, false
}

// Insert places v into the tree.
//
// If this node already has children, or is a full leaf with depth budget
// remaining, v is routed into the first quadrant that fully contains it
// (splitting the node first if needed). If no quadrant contains v it stays
// in this node, the closest big-enough parent. Otherwise v is appended to
// this node's own values.
func (t *Tree[T]) Insert(v T) {
	if !t.IsLeaf() || (len(t.values) >= t.maxValues && t.maxDepth > 0) {
		q, ok := t.fits(v)
		if !ok {
			t.values = append(t.values, v)
			return
		}
		t.split()
		t.children[q].Insert(v)
		return
	}
	t.values = append(t.values, v)
}

// split turns a leaf into a branch with four children, one per quadrant,
// then pushes this node's current values back through Insert so each settles
// in its child or stays here. Values are drained into a buffer first so the
// live slice is not mutated while redistribution reads it, and re-inserted
// in their original order. No-op on a node that is already split or has no
// depth budget left.
func (t *Tree[T]) split() {
	if !t.IsLeaf() || t.maxDepth <= 0 {
		return
	}
	t.children = make([]*Tree[T], 0, 4)
	for _, q := range Quadrants {
		t.children = append(t.children, t.newChild(q))
	}

	vals := t.values
	t.values = nil
	for _, v := range vals {
		t.Insert(v)
	}
}

// Update advances every element in the tree by dt seconds and reports
// whether any element changed. It is available only for element types that
// are Dynamic in addition to Collidable.
//
// The traversal is depth-first, children before locally-held values. An
// element whose box is no longer inside its node's zone after updating is
// removed from that node and re-inserted at the root once the traversal has
// completed, so the tree is never restructured mid-traversal. An element
// that escapes the root zone entirely stays on the root node as an
// overflow element.
func Update[T interface {
	Collidable
	Dynamic
}](t *Tree[T], dt float64) bool {
	var escaped []T
	changed := update(t, dt, &escaped)
	for _, v := range escaped {
		t.Insert(v)
	}
	return changed
}

// update recurses below t, collecting out-of-zone elements into escaped.
func update[T interface {
	Collidable
	Dynamic
}](t *Tree[T], dt float64, escaped *[]T) bool {
	changed := false
	for _, c := range t.children {
		changed = update(c, dt, escaped) || changed
	}
	kept := t.values[:0]
	for _, v := range t.values {
		changed = v.Update(dt) || changed
		if v.BoundingBox().IsInside(t.zone) {
			kept = append(kept, v)
		} else {
			*escaped = append(*escaped, v)
		}
	}
	// Zero the vacated tail so escaped elements are not retained by the
	// backing array.
	var zero T
	for i := len(kept); i < len(t.values); i++ {
		t.values[i] = zero
	}
	t.values = kept
	return changed
}

// Draw renders the tree onto target: this node's zone outline first, then
// its locally-held elements, then each child subtree, so children overlay
// their parent's outline. It is available only for element types that are
// Drawable in addition to Collidable.
//
// The first error aborts the traversal and is returned unmodified; anything
// already emitted stays emitted.
func Draw[T interface {
	Collidable
	Drawable
}](t *Tree[T], target Target) error {
	if err := target.StrokeRect(t.zone, ZoneOutline); err != nil {
		return err
	}
	for _, v := range t.values {
		if err := v.Draw(target); err != nil {
			return err
		}
	}
	for _, c := range t.children {
		if err := Draw(c, target); err != nil {
			return err
		}
	}
	return nil
}
