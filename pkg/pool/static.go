package pool

// Static is an unbounded free list of instances of one type.
//
// Instances are created on demand when the free list is empty and are never
// evicted. Static performs no locking: it must only be used from a single
// goroutine, typically for transient per-frame helpers.
type Static[T any, P Poolable[T]] struct {
	free []P
}

// NewStatic returns an empty static pool.
func NewStatic[T any, P Poolable[T]]() *Static[T, P] {
	return &Static[T, P]{}
}

// Rent returns a free instance, or a new zero-valued one if none is free.
func (s *Static[T, P]) Rent() P {
	n := len(s.free)
	if n == 0 {
		return P(new(T))
	}
	item := s.free[n-1]
	s.free[n-1] = nil
	s.free = s.free[:n-1]
	return item
}

// Return resets item and puts it back on the free list.
// A nil item is ignored. Returning the same item twice without an
// intervening Rent corrupts the pool and is not detected.
func (s *Static[T, P]) Return(item P) {
	if item == nil {
		return
	}
	item.Reset()
	s.free = append(s.free, item)
}

// Free returns the number of instances waiting on the free list.
func (s *Static[T, P]) Free() int {
	return len(s.free)
}
