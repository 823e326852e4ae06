// Package ecs provides ECS adapters for boxtree.
package ecs

import (
	"github.com/phanxgames/boxtree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Bounds is the Donburi component holding an entity's bounding box.
// Movement systems mutate it in place; the spatial index reads it by
// reference, so a rebuilt tree always sees current positions.
var Bounds = donburi.NewComponentType[boxtree.Box]()

// Entity wraps a Donburi entry for storage in a boxtree.Tree. Its bounding
// box points directly at the entry's Bounds component storage.
type Entity struct {
	Entry *donburi.Entry
	box   *boxtree.Box
}

// BoundingBox returns the entity's live Bounds storage.
func (e *Entity) BoundingBox() *boxtree.Box { return e.box }

// Index maintains a boxtree over every entity in a world that carries
// Bounds. The tree supports no removal, so Rebuild re-files the whole world
// each tick; entity counts in the hundreds rebuild well within a frame.
type Index struct {
	world     donburi.World
	query     *donburi.Query
	maxValues int
	maxDepth  int
	zone      boxtree.Box
	tree      *boxtree.Tree[*Entity]
}

// NewIndex creates an index over world with the given tree configuration.
// The tree is empty until the first Rebuild.
func NewIndex(world donburi.World, maxValues, maxDepth int, zone boxtree.Box) *Index {
	return &Index{
		world:     world,
		query:     donburi.NewQuery(filter.Contains(Bounds)),
		maxValues: maxValues,
		maxDepth:  maxDepth,
		zone:      zone,
		tree:      boxtree.New[*Entity](maxValues, maxDepth, zone),
	}
}

// Rebuild files every Bounds-carrying entity into a fresh tree and returns
// it. The previous tree (and any Entity pointers taken from it) remains
// valid but stale.
func (ix *Index) Rebuild() *boxtree.Tree[*Entity] {
	tree := boxtree.New[*Entity](ix.maxValues, ix.maxDepth, ix.zone)
	ix.query.Each(ix.world, func(entry *donburi.Entry) {
		tree.Insert(&Entity{Entry: entry, box: Bounds.Get(entry)})
	})
	ix.tree = tree
	return tree
}

// Tree returns the most recently built tree.
func (ix *Index) Tree() *boxtree.Tree[*Entity] {
	return ix.tree
}

// Spawn creates an entity with the given Bounds and returns its entry.
// Convenience for tests and demos.
func Spawn(world donburi.World, box boxtree.Box) *donburi.Entry {
	entry := world.Entry(world.Create(Bounds))
	Bounds.SetValue(entry, box)
	return entry
}
