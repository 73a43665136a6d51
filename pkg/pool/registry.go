package pool

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bft-labs/xfer/pkg/log"
)

// Reporter is implemented by pools that can report statistics.
type Reporter interface {
	Name() string
	Stats() Stats
}

// Registry tracks named pools for diagnostics.
// Callers keep their own pool handles; the registry only reads statistics.
type Registry struct {
	mu    sync.RWMutex
	pools map[string]Reporter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{pools: make(map[string]Reporter)}
}

// Register adds p under its name.
func (r *Registry) Register(p Reporter) error {
	name := p.Name()
	if name == "" {
		return ErrUnnamed
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pools[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.pools[name] = p
	return nil
}

// Unregister removes the pool with the given name, if present.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.pools, name)
	r.mu.Unlock()
}

// Stats returns a snapshot of every registered pool, sorted by name.
func (r *Registry) Stats() []Stats {
	r.mu.RLock()
	reporters := make([]Reporter, 0, len(r.pools))
	for _, p := range r.pools {
		reporters = append(reporters, p)
	}
	r.mu.RUnlock()

	out := make([]Stats, 0, len(reporters))
	for _, p := range reporters {
		out = append(out, p.Stats())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Log writes one info line per registered pool.
func (r *Registry) Log(logger log.Logger) {
	for _, s := range r.Stats() {
		logger.Info("pool stats",
			log.String("pool", s.Name),
			log.Int("total", s.Total),
			log.Int("free", s.Free),
			log.Int("used", s.Used))
	}
}
