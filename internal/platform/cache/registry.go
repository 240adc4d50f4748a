package cache

import "time"

// Registry groups the process-wide named stores so the sweeper and the
// admin endpoints can act on all of them at once.
type Registry struct {
	stores []*Store
}

type StoreStatus struct {
	Name string
	Size int
	TTL  time.Duration
}

func NewRegistry(stores ...*Store) *Registry {
	out := make([]*Store, 0, len(stores))
	for _, store := range stores {
		if store != nil {
			out = append(out, store)
		}
	}
	return &Registry{stores: out}
}

func (r *Registry) Stores() []*Store {
	out := make([]*Store, len(r.stores))
	copy(out, r.stores)
	return out
}

func (r *Registry) Status() []StoreStatus {
	out := make([]StoreStatus, 0, len(r.stores))
	for _, store := range r.stores {
		out = append(out, StoreStatus{
			Name: store.Name(),
			Size: store.Len(),
			TTL:  store.TTL(),
		})
	}
	return out
}

func (r *Registry) ClearExpired() int {
	removed := 0
	for _, store := range r.stores {
		removed += store.ClearExpired()
	}
	return removed
}

func (r *Registry) Clear() {
	for _, store := range r.stores {
		store.Clear()
	}
}
