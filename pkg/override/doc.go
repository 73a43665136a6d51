// Package override implements pooled override chains: a base value followed
// by zero or more successively more specific overrides.
//
//	nodes := override.NewPool[float32]("speed", 64, 16)
//	speed := nodes.New(4.5)      // base value
//	speed.Append(6.0)            // upgrade applied
//	speed.Resolve()              // 6.0
//	speed = speed.DeleteOverrides()
//	speed.Resolve()              // 4.5
//	speed.Dispose()
//
// Each node exclusively owns its successor. Chains are acyclic by
// construction: links are only created by Append and SetNext, and a node
// passed to SetNext must not already be part of a chain.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package override
