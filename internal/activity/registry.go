package activity

import (
	"sort"
	"sync"

	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
)

// Registry manages all tracked activities.
type Registry struct {
	activities map[string]Activity
	order      []string
	mu         sync.RWMutex
}

// NewRegistry creates an empty activity registry.
func NewRegistry() *Registry {
	return &Registry{activities: make(map[string]Activity)}
}

// Register adds an activity. Registration order is preserved for listing.
func (r *Registry) Register(a Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if _, exists := r.activities[name]; exists {
		return apperrors.New(apperrors.ErrInternal.Code, "activity already registered: "+name)
	}
	r.activities[name] = a
	r.order = append(r.order, name)
	return nil
}

// Get retrieves an activity by name.
func (r *Registry) Get(name string) (Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.activities[name]
	return a, ok
}

// List returns all activities in registration order.
func (r *Registry) List() []Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.activities[name])
	}
	return out
}

// Names returns the registered activity names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ByCategory returns activities of one category, name-sorted.
func (r *Registry) ByCategory(cat Category) []Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Activity
	for _, a := range r.activities {
		if a.Category() == cat {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
