package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[K comparable, V any] struct {
	mux sync.RWMutex
	m   map[K]V
}

// New creates a new instance of Map
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V),
	}
}

// GetOrCreate returns the item stored under key, calling create to build and
// store it when absent. create runs under the write lock, so it must not call
// back into the map.
func (r *Map[K, V]) GetOrCreate(key K, create func() V) (V, bool) {
	r.mux.RLock()
	v, ok := r.m[key]
	r.mux.RUnlock()
	if ok {
		return v, false
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if v, ok = r.m[key]; ok {
		return v, false
	}
	v = create()
	r.m[key] = v
	return v, true
}

// List returns a slice of all items
func (r *Map[K, V]) List() []V {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]V, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}

// Range calls fn for every item until fn returns false. fn runs under the
// read lock and must not modify the map.
func (r *Map[K, V]) Range(fn func(key K, value V) bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	for k, v := range r.m {
		if !fn(k, v) {
			return
		}
	}
}
