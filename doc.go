// Package boxtree is a quadtree spatial index for 2D games built on
// [Ebitengine].
//
// A [Tree] partitions an integer zone into four quadrants when a node
// overflows, filing each element into the smallest node whose zone fully
// contains the element's bounding box. Elements that straddle a quadrant
// boundary stay in the closest big-enough parent node.
//
// # Quick start
//
// Any type with a bounding box can be stored:
//
//	type Crate struct{ box boxtree.Box }
//
//	func (c *Crate) BoundingBox() *boxtree.Box { return &c.box }
//
//	tree := boxtree.NewDefault[*Crate]()
//	tree.Insert(&Crate{box: boxtree.Box{X: 1, Y: 1, W: 10, H: 10}})
//
// # Capabilities
//
// Storage requires only [Collidable]. Two further capabilities unlock
// tree-level operations at compile time: element types that are also
// [Dynamic] can be advanced each tick with [Update], and types that are
// also [Drawable] can be rendered with [Draw] against any [Target], such
// as a [Canvas] wrapping an ebiten.Image.
//
// # Driving a demo
//
// [Run] opens a window and drives a fixed-step loop:
//
//	boxtree.Run(boxtree.RunConfig{
//		Title: "Quadtree", Width: 256, Height: 256,
//		OnUpdate: func(dt float64) error { boxtree.Update(tree, dt); return nil },
//		OnDraw:   func(c *boxtree.Canvas) error { return boxtree.Draw(tree, c) },
//	})
//
// The tree itself is single-threaded: serialize access at the root if you
// mutate it from multiple goroutines.
//
// [Ebitengine]: https://ebitengine.org
package boxtree
