package override

// Value is one node of an override chain.
//
// The zero value is a detached base node that does not belong to a pool;
// nodes obtained from Pool.New return to that pool on Dispose.
type Value[V any] struct {
	value      V
	next       *Value[V]
	isOverride bool

	// live is set while the node is checked out of its pool.
	live bool
	pool *Pool[V]
}

// Reset clears the node to a blank state.
func (n *Value[V]) Reset() {
	var zero V
	n.value = zero
	n.next = nil
	n.isOverride = false
	n.live = false
	n.pool = nil
}

// OnAcquire is called by the pool when the node is handed out.
func (n *Value[V]) OnAcquire() {
	n.Reset()
	n.live = true
}

// OnRelease is called by the pool when the node is returned.
func (n *Value[V]) OnRelease() {
	n.Reset()
}

// Value returns the value held by this node.
func (n *Value[V]) Value() V {
	return n.value
}

// Set replaces the value held by this node.
func (n *Value[V]) Set(v V) {
	n.value = v
}

// MarkAsOverride flags the node as an override. It is idempotent.
func (n *Value[V]) MarkAsOverride() {
	n.isOverride = true
}

// IsOverride reports whether the node is flagged as an override.
func (n *Value[V]) IsOverride() bool {
	return n.isOverride
}

// Next returns the successor node, or nil.
func (n *Value[V]) Next() *Value[V] {
	return n.next
}

// SetNext makes next the successor of n and returns the previous successor,
// whose ownership passes back to the caller.
func (n *Value[V]) SetNext(next *Value[V]) *Value[V] {
	prev := n.next
	n.next = next
	return prev
}

// Append links a new override node holding v after the last node of the
// chain and returns it.
//
// It panics if n does not belong to a pool.
func (n *Value[V]) Append(v V) *Value[V] {
	if n.pool == nil {
		panic("override: Append on a node without a pool")
	}
	o := n.pool.New(v)
	o.MarkAsOverride()
	n.FinalOverride().next = o
	return o
}

// FinalOverride returns the last node of the chain starting at n, or n
// itself when it has no successor. It has no side effects.
func (n *Value[V]) FinalOverride() *Value[V] {
	last := n
	for last.next != nil {
		last = last.next
	}
	return last
}

// Resolve returns the value of the final override.
func (n *Value[V]) Resolve() V {
	return n.FinalOverride().value
}

// Len returns the number of nodes in the chain starting at n.
func (n *Value[V]) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// DeleteOverrides removes every node flagged as an override from the chain
// starting at n and returns the first surviving node, or nil if none
// survives. Survivors are re-linked in their original order and removed
// nodes are released to their pool.
//
// A removed override node releases only itself, not the rest of the chain
// after it: base nodes following an override are kept and re-linked, so
// base → override → base leaves the two base nodes linked.
func (n *Value[V]) DeleteOverrides() *Value[V] {
	var survivor *Value[V]
	if n.next != nil {
		survivor = n.next.DeleteOverrides()
	}
	if n.isOverride {
		n.next = nil
		n.Dispose()
		return survivor
	}
	n.next = survivor
	return n
}

// Dispose releases n and every node after it back to their pool. Calling it
// again before the node is reacquired has no effect, and neither does
// calling it on a node that never came from a pool.
func (n *Value[V]) Dispose() {
	for cur := n; cur != nil && cur.live; {
		next := cur.next
		cur.next = nil
		cur.pool.release(cur)
		cur = next
	}
}
