package hackathon

import (
	"sync"
	"time"

	"github.com/xy-planning-network/hackathons/auth"
)

// A Factory builds the API a session's Store calls, authenticated with token.
type Factory func(token auth.Token) API

// A Registry keeps one Store per client session.
//
// A Store is replaced whenever the Token its session holds changes,
// so cached data never crosses from one login to another.
type Registry struct {
	factory Factory
	now     func() time.Time
	opts    []StoreOption

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	lastUsed time.Time
	store    *Store
	token    auth.Token
}

// NewRegistry constructs an empty *Registry.
// Every Store it builds is configured with opts.
func NewRegistry(f Factory, opts ...StoreOption) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		factory: f,
		now:     time.Now,
		opts:    opts,
	}
}

// Store returns the Store for the session identified by id, building one if needed.
func (r *Registry) Store(id string, token auth.Token) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.token != token {
		e = &entry{store: NewStore(r.factory(token), r.opts...), token: token}
		r.entries[id] = e
	}

	e.lastUsed = r.now()
	return e.store
}

// Evict forgets the Store of the session identified by id.
func (r *Registry) Evict(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Len returns the number of sessions held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep evicts every Store unused for longer than idle, returning how many were evicted.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	var n int
	for id, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, id)
			n++
		}
	}

	return n
}
