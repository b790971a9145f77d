package cart

import (
	"context"
	"sync"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an untouched cart survives before a sweep
// drops it.
const DefaultSessionTTL = 2 * time.Hour

// Registry tracks live cart sessions in memory. There is no persistence:
// a restart or an expired session destroys the cart, last write wins within
// one.
type Registry struct {
	mu     sync.RWMutex
	carts  map[uuid.UUID]*Cart
	ttl    time.Duration
	logger apt.Logger
}

// NewRegistry creates an empty session registry.
func NewRegistry(logger apt.Logger) *Registry {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Registry{
		carts:  make(map[uuid.UUID]*Cart),
		ttl:    DefaultSessionTTL,
		logger: logger,
	}
}

// Create registers a new cart session.
func (r *Registry) Create() *Cart {
	c := New()
	r.mu.Lock()
	r.carts[c.ID()] = c
	r.mu.Unlock()
	r.logger.Debug("cart session created", "cart_id", c.ID().String())
	return c
}

// Get returns a live cart session.
func (r *Registry) Get(id uuid.UUID) (*Cart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[id]
	return c, ok
}

// Delete destroys a cart session.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.carts, id)
	r.mu.Unlock()
}

// Sweep drops sessions untouched for longer than the TTL and reports how
// many were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, c := range r.carts {
		if now.Sub(c.UpdatedAt()) > r.ttl {
			delete(r.carts, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Debug("swept abandoned cart sessions", "removed", removed)
	}
	return removed
}

// SweepLoopFunc returns a lifecycle OnStart-compatible function that sweeps
// abandoned sessions on an interval until the context is cancelled.
func SweepLoopFunc(r *Registry, interval time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					r.Sweep(now)
				}
			}
		}()
		return nil
	}
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
