package pool

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"

	"github.com/bft-labs/xfer/pkg/log"
)

// DefaultOverflowCount is the growth batch used when a pool is created with a
// non-positive overflow count.
const DefaultOverflowCount = 8

// Stats is a point-in-time snapshot of a named pool.
type Stats struct {
	Name  string
	Total int
	Free  int
	Used  int
}

// String formats the snapshot for diagnostics.
func (s Stats) String() string {
	return fmt.Sprintf("%s: total=%d free=%d used=%d", s.Name, s.Total, s.Free, s.Used)
}

// Option configures a named pool.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger used to report pool growth.
// If not provided, growth is not logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Named is a thread-safe pool that owns every instance it has ever created.
//
// When the free list is exhausted it allocates a whole batch of overflow
// instances at once. Allocate, Free, Stats and growth are mutually exclusive.
type Named[T any, P Poolable[T]] struct {
	mu       sync.Mutex
	name     string
	overflow int
	total    int
	free     *queue.Queue

	acquire func(P)
	release func(P)
	logger  log.Logger
}

// NewNamed creates a pool and eagerly allocates initial instances.
// Both hooks call Reset on the instance.
//
// It panics if name is empty or initial is negative.
func NewNamed[T any, P Poolable[T]](name string, initial, overflow int, opts ...Option) *Named[T, P] {
	reset := func(item P) { item.Reset() }
	return newNamed[T, P](name, initial, overflow, reset, reset, opts)
}

// NewNamedLifecycle is like NewNamed but routes acquire and release through
// the instance's own OnAcquire and OnRelease hooks.
func NewNamedLifecycle[T any, P Lifecycle[T]](name string, initial, overflow int, opts ...Option) *Named[T, P] {
	return newNamed[T, P](name, initial, overflow,
		func(item P) { item.OnAcquire() },
		func(item P) { item.OnRelease() },
		opts)
}

func newNamed[T any, P Poolable[T]](name string, initial, overflow int, acquire, release func(P), opts []Option) *Named[T, P] {
	if name == "" {
		panic("pool: named pool requires a name")
	}
	if initial < 0 {
		panic(fmt.Sprintf("pool: %s: negative initial count %d", name, initial))
	}

	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	p := &Named[T, P]{
		name:     name,
		overflow: overflow,
		free:     queue.New(),
		acquire:  acquire,
		release:  release,
		logger:   o.logger,
	}
	p.grow(initial)
	return p
}

// Name returns the pool name.
func (p *Named[T, P]) Name() string {
	return p.name
}

// Allocate takes an instance from the free list, growing the pool first if
// it is empty, and runs the acquire hook on it.
func (p *Named[T, P]) Allocate() P {
	p.mu.Lock()
	if p.free.Length() == 0 {
		n := p.overflow
		if n <= 0 {
			n = DefaultOverflowCount
		}
		p.grow(n)
		p.logger.Debug("pool grown",
			log.String("pool", p.name),
			log.Int("added", n),
			log.Int("total", p.total))
	}
	item := p.free.Remove().(P)
	p.mu.Unlock()

	p.acquire(item)
	return item
}

// Free runs the release hook on item and returns it to the free list.
// A nil item is ignored.
//
// It panics if the free list already holds every instance the pool ever
// created. This catches a double free or a foreign instance only once the
// pool is otherwise fully free; while other instances are checked out such
// misuse goes undetected and leaves the same instance queued twice.
func (p *Named[T, P]) Free(item P) {
	if item == nil {
		return
	}
	p.release(item)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.free.Length() >= p.total {
		panic(fmt.Sprintf("pool: %s: free list overflow (total=%d)", p.name, p.total))
	}
	p.free.Add(item)
}

// Stats returns a snapshot taken under the pool lock.
func (p *Named[T, P]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	free := p.free.Length()
	return Stats{
		Name:  p.name,
		Total: p.total,
		Free:  free,
		Used:  p.total - free,
	}
}

// grow must be called with p.mu held, or before p is shared.
func (p *Named[T, P]) grow(n int) {
	for i := 0; i < n; i++ {
		p.free.Add(P(new(T)))
	}
	p.total += n
}
