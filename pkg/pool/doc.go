// Package pool recycles object instances so hot allocation paths do not churn
// the garbage collector.
//
// Two strategies are provided:
//
//   - [Static]: an unbounded free list for one type. Minimal overhead, no
//     statistics, single-threaded callers only.
//   - [Named]: an explicitly sized, mutex-guarded pool that carries a name and
//     reports allocation statistics. It grows in batches when exhausted.
//
// Pooled types are pointers whose element type implements Reset on the
// pointer receiver:
//
//	type pathNode struct{ x, y int32; parent *pathNode }
//
//	func (n *pathNode) Reset() { *n = pathNode{} }
//
//	nodes := pool.NewNamed[pathNode]("path-nodes", 256, 64)
//	n := nodes.Allocate()
//	defer nodes.Free(n)
//
// Types that need custom acquire/release behavior implement OnAcquire and
// OnRelease and are pooled with [NewNamedLifecycle]. The choice is made at
// compile time by the caller; otherwise both hooks default to Reset.
//
// A caller borrows an instance between Allocate/Rent and Free/Return and must
// not retain it, or anything derived from its previous state, afterwards.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package pool
