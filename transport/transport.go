package transport

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/viant/lifecycle/internal/logging"
	"github.com/viant/lifecycle/singleton"
)

// UUID is the value produced by callables passed to ProcessWithCallable.
type UUID = string

// FailName is the name the default factory refuses to open.
const FailName = "fail"

// Impl is the implementation hidden behind a Transport.
type Impl interface {
	Process(arg string) string
	ProcessWithCallable(fn func(uint64) UUID) UUID
}

// Factory builds the implementation for name. A non-empty description means
// the transport could not be opened.
type Factory func(name string) (Impl, string)

// Transport forwards every operation to its Impl.
type Transport struct {
	id       uuid.UUID
	name     string
	failDesc string
	impl     Impl
	logger   zerolog.Logger
}

// New opens a transport with the default factory.
func New(name string) *Transport {
	return NewWithFactory(DefaultFactory, name)
}

// NewWithFactory opens a transport with factory.
func NewWithFactory(factory Factory, name string) *Transport {
	impl, failDesc := factory(name)
	t := &Transport{
		id:       uuid.New(),
		name:     name,
		failDesc: failDesc,
		impl:     impl,
		logger:   logging.Component("transport"),
	}
	t.logger.Debug().Str("name", name).Str("id", t.id.String()).Bool("open", t.IsOpen()).Msg("created transport")
	return t
}

// Singleton returns the process-wide Transport wrapper.
func Singleton(opts ...singleton.Option) *singleton.ResultWrapper[string, *Transport, string] {
	return singleton.SharedWithResult[string](New, opts...)
}

// ID returns the identity token of this transport.
func (t *Transport) ID() string { return t.id.String() }

// Name returns the name the transport was opened with.
func (t *Transport) Name() string { return t.name }

// IsOpen reports whether the factory opened the transport.
func (t *Transport) IsOpen() bool { return t.failDesc == "" }

// OpenError returns the failure description, if any.
func (t *Transport) OpenError() string { return t.failDesc }

func (t *Transport) InstanceOK() bool { return t.IsOpen() }

func (t *Transport) InstanceResultValue() string { return t.failDesc }

// Process forwards arg to the implementation.
func (t *Transport) Process(arg string) string {
	return t.impl.Process(arg)
}

// ProcessWithCallable hands fn to the implementation and returns what it produced.
func (t *Transport) ProcessWithCallable(fn func(uint64) UUID) UUID {
	return t.impl.ProcessWithCallable(fn)
}

// Close is called when the last singleton handle is released.
func (t *Transport) Close() error {
	t.logger.Debug().Str("name", t.name).Str("id", t.id.String()).Msg("closed transport")
	return nil
}

// DefaultFactory builds the in-memory implementation.
var DefaultFactory Factory = newMemory

// CallableArg is the argument the in-memory implementation passes to callables.
const CallableArg uint64 = 345

type memory struct {
	mu      sync.Mutex
	data    string
	counter uint64
}

func newMemory(name string) (Impl, string) {
	if name == FailName {
		return nil, "got fail for name"
	}
	return &memory{data: name}, ""
}

// Process returns data+arg+counter and advances the counter.
func (m *memory) Process(arg string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ret := fmt.Sprintf("%s+%s+%d", m.data, arg, m.counter)
	m.counter++
	return ret
}

func (m *memory) ProcessWithCallable(fn func(uint64) UUID) UUID {
	return fn(CallableArg)
}
