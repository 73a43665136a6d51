package override

import "github.com/bft-labs/xfer/pkg/pool"

// Pool hands out chain nodes holding values of type V.
// It is safe for concurrent use; individual chains are not.
type Pool[V any] struct {
	nodes *pool.Named[Value[V], *Value[V]]
}

// NewPool creates a named node pool. See pool.NewNamed for the sizing rules.
func NewPool[V any](name string, initial, overflow int, opts ...pool.Option) *Pool[V] {
	return &Pool[V]{
		nodes: pool.NewNamedLifecycle[Value[V]](name, initial, overflow, opts...),
	}
}

// New returns a base node holding v, with no successor.
func (p *Pool[V]) New(v V) *Value[V] {
	n := p.nodes.Allocate()
	n.pool = p
	n.value = v
	return n
}

// Name returns the name of the underlying pool.
func (p *Pool[V]) Name() string {
	return p.nodes.Name()
}

// Stats reports the underlying pool statistics.
func (p *Pool[V]) Stats() pool.Stats {
	return p.nodes.Stats()
}

func (p *Pool[V]) release(n *Value[V]) {
	p.nodes.Free(n)
}
