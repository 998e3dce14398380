package singleton

import (
	"io"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Stats is a snapshot of a wrapper's lifecycle counters.
type Stats struct {
	Name        string
	Kind        Kind
	Policy      Policy
	Constructed uint64
	Discarded   uint64
	Destroyed   uint64
	Acquired    uint64
	Live        bool
	UseCount    int64
}

// slot holds the weak reference to the current instance and the gate that
// serializes construction. weak and keep are written only under gate.
type slot[T, A any] struct {
	name   string
	kind   Kind
	policy Policy
	ctor   func(A) T
	check  func(T) error
	logger zerolog.Logger

	gate sync.Mutex
	weak atomic.Pointer[control[T]]
	keep *Handle[T]

	constructed atomic.Uint64
	discarded   atomic.Uint64
	destroyed   atomic.Uint64
	acquired    atomic.Uint64
}

func newSlot[T, A any](kind Kind, ctor func(A) T, check func(T) error, o *options) *slot[T, A] {
	name := o.name
	if name == "" {
		name = reflect.TypeFor[T]().String()
	}
	return &slot[T, A]{
		name:   name,
		kind:   kind,
		policy: o.policy,
		ctor:   ctor,
		check:  check,
		logger: o.logger.With().Str("singleton", name).Logger(),
	}
}

// resolve retains the published instance, returning nil when there is none
// or it is already dead.
func (s *slot[T, A]) resolve() *Handle[T] {
	c := s.weak.Load()
	if c == nil || !c.tryRetain() {
		return nil
	}
	return &Handle[T]{c: c}
}

func (s *slot[T, A]) acquire(args A) (*Handle[T], error) {
	if h := s.resolve(); h != nil {
		s.acquired.Add(1)
		return h, nil
	}

	s.gate.Lock()
	defer s.gate.Unlock()

	// Another caller may have published between the first check and the gate.
	if h := s.resolve(); h != nil {
		s.acquired.Add(1)
		return h, nil
	}

	h := &Handle[T]{c: newControl(s.ctor(args), s.destroy)}
	s.constructed.Add(1)
	if s.check != nil {
		if err := s.check(h.c.value); err != nil {
			s.discarded.Add(1)
			s.logger.Debug().Err(err).Msg("discarded invalid instance")
			h.Release()
			return nil, err
		}
	}

	s.weak.Store(h.c)
	if s.policy == ProcessKeepAlive && s.keep == nil {
		s.keep = h.Share()
	}
	s.acquired.Add(1)
	s.logger.Debug().Str("policy", s.policy.String()).Msg("constructed instance")
	return h, nil
}

func (s *slot[T, A]) destroy(c *control[T]) {
	if closer, ok := any(c.value).(io.Closer); ok {
		if err := closer.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("close instance")
		}
	}
	s.destroyed.Add(1)
	s.logger.Debug().Msg("destroyed instance")
}

// reset forgets the published instance and drops the keep-alive owner.
// Handles already held by callers stay valid.
func (s *slot[T, A]) reset() {
	s.gate.Lock()
	keep := s.keep
	s.keep = nil
	s.weak.Store(nil)
	s.gate.Unlock()
	if keep != nil {
		keep.Release()
	}
}

// Live reports whether a valid instance is currently published and alive.
func (s *slot[T, A]) Live() bool {
	c := s.weak.Load()
	return c != nil && c.refs.Load() > 0
}

// Name returns the wrapper name.
func (s *slot[T, A]) Name() string { return s.name }

// Stats returns a snapshot of the lifecycle counters.
func (s *slot[T, A]) Stats() Stats {
	stats := Stats{
		Name:        s.name,
		Kind:        s.kind,
		Policy:      s.policy,
		Constructed: s.constructed.Load(),
		Discarded:   s.discarded.Load(),
		Destroyed:   s.destroyed.Load(),
		Acquired:    s.acquired.Load(),
	}
	if c := s.weak.Load(); c != nil {
		if n := c.refs.Load(); n > 0 {
			stats.Live = true
			stats.UseCount = n
		}
	}
	return stats
}
