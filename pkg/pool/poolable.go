package pool

// Poolable is satisfied by *T when T can be restored to a blank logical state.
// After Reset returns the instance must hold no references to data from its
// previous lifetime.
type Poolable[T any] interface {
	*T
	Reset()
}

// Lifecycle is a Poolable that wants its own acquire and release hooks
// instead of the default of calling Reset.
type Lifecycle[T any] interface {
	Poolable[T]

	// OnAcquire is called after the instance leaves the free list.
	OnAcquire()

	// OnRelease is called before the instance re-enters the free list.
	OnRelease()
}
