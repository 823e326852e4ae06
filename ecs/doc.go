// Package ecs provides ECS adapters for boxtree.
//
// The primary adapter is [Index], which files every entity carrying the
// [Bounds] component from a [Donburi] world into a boxtree.Tree. Movement
// systems write to Bounds; call [Index.Rebuild] after each world tick to
// re-file entities, then walk the tree for broad-phase queries or debug
// rendering.
//
// Usage:
//
//	ix := ecs.NewIndex(world, 4, 6, boxtree.Box{W: 1024, H: 1024})
//	ix.Rebuild()
//	tree := ix.Tree()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
