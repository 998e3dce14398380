package singleton

import (
	"reflect"
	"sort"

	"github.com/viant/lifecycle/internal/registry"
)

// Shared returns the process-wide wrapper for (T, A) under the selected
// policy, binding ctor on first use. Later calls reuse the first binding and
// ignore their own ctor and options other than the policy.
func Shared[T, A any](ctor func(A) T, opts ...Option) *Wrapper[T, A] {
	return &Wrapper[T, A]{slot: sharedSlot[T, A](KindNone, ctor, nil, opts)}
}

// SharedChecked is the process-wide counterpart of NewChecked.
func SharedChecked[T Checkable, A any](ctor func(A) T, opts ...Option) *CheckedWrapper[T, A] {
	return &CheckedWrapper[T, A]{slot: sharedSlot(KindChecked, ctor, checkOnly[T], opts)}
}

// SharedWithResult is the process-wide counterpart of NewWithResult.
func SharedWithResult[R any, T ResultBearing[R], A any](ctor func(A) T, opts ...Option) *ResultWrapper[R, T, A] {
	return &ResultWrapper[R, T, A]{slot: sharedSlot(KindCheckedWithResult, ctor, checkWithResult[R, T], opts)}
}

func sharedSlot[T, A any](kind Kind, ctor func(A) T, check func(T) error, opts []Option) *slot[T, A] {
	o := newOptions(opts)
	key := registry.Key{
		Type:      reflect.TypeFor[T](),
		Args:      reflect.TypeFor[A](),
		Kind:      int(kind),
		KeepAlive: o.policy == ProcessKeepAlive,
	}
	entry, _ := registry.Default.GetOrCreate(key, func() *registry.Entry {
		s := newSlot(kind, ctor, check, o)
		return &registry.Entry{Value: s, Reset: s.reset}
	})
	return entry.Value.(*slot[T, A])
}

// SharedStats returns the stats of every process-wide wrapper, ordered by name.
func SharedStats() []Stats {
	var ret []Stats
	for _, entry := range registry.Default.List() {
		if s, ok := entry.Value.(interface{ Stats() Stats }); ok {
			ret = append(ret, s.Stats())
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Name != ret[j].Name {
			return ret[i].Name < ret[j].Name
		}
		return ret[i].Policy < ret[j].Policy
	})
	return ret
}
