package singleton

import "reflect"

// Wrapper manages a type without the construction protocol.
type Wrapper[T, A any] struct {
	*slot[T, A]
}

// CheckedWrapper manages a Checkable type. Failures carry no payload.
type CheckedWrapper[T Checkable, A any] struct {
	*slot[T, A]
}

// ResultWrapper manages a ResultBearing type. Failures carry the value
// reported by InstanceResultValue.
type ResultWrapper[R any, T ResultBearing[R], A any] struct {
	*slot[T, A]
}

// New binds ctor without validation. Every constructed instance is published.
func New[T, A any](ctor func(A) T, opts ...Option) *Wrapper[T, A] {
	return &Wrapper[T, A]{slot: newSlot[T, A](KindNone, ctor, nil, newOptions(opts))}
}

// NewChecked binds ctor for a Checkable type.
func NewChecked[T Checkable, A any](ctor func(A) T, opts ...Option) *CheckedWrapper[T, A] {
	return &CheckedWrapper[T, A]{slot: newSlot(KindChecked, ctor, checkOnly[T], newOptions(opts))}
}

// NewWithResult binds ctor for a ResultBearing type. R is usually the only
// type argument that needs to be spelled out:
//
//	w := singleton.NewWithResult[int](NewDriver)
func NewWithResult[R any, T ResultBearing[R], A any](ctor func(A) T, opts ...Option) *ResultWrapper[R, T, A] {
	return &ResultWrapper[R, T, A]{slot: newSlot(KindCheckedWithResult, ctor, checkWithResult[R, T], newOptions(opts))}
}

// Acquire returns a handle to the live instance, constructing it from args
// when there is none.
//
// The lookup of a live instance takes no lock but allocates the returned
// Handle, which tracks its own release.
func (w *Wrapper[T, A]) Acquire(args A) *Handle[T] {
	h, _ := w.acquire(args)
	return h
}

// Acquire returns a handle to the live instance, constructing it from args
// when there is none. A construction that fails InstanceOK yields a
// *ValidationError without payload.
//
// The lookup of a live instance takes no lock but allocates the returned
// Handle, which tracks its own release.
func (w *CheckedWrapper[T, A]) Acquire(args A) (*Handle[T], error) {
	return w.acquire(args)
}

// Acquire returns a handle to the live instance, constructing it from args
// when there is none. A construction that fails InstanceOK yields a
// *ValidationError carrying InstanceResultValue.
//
// The lookup of a live instance takes no lock but allocates the returned
// Handle, which tracks its own release.
func (w *ResultWrapper[R, T, A]) Acquire(args A) (*Handle[T], error) {
	return w.acquire(args)
}

// Result unwraps the reported value of a failure returned by Acquire.
func (w *ResultWrapper[R, T, A]) Result(err error) (R, bool) {
	value, uerr := ResultAs[R](err)
	return value, uerr == nil
}

func checkOnly[T Checkable](v T) error {
	if v.InstanceOK() {
		return nil
	}
	return &ValidationError{Type: reflect.TypeFor[T]().String()}
}

func checkWithResult[R any, T ResultBearing[R]](v T) error {
	if v.InstanceOK() {
		return nil
	}
	return &ValidationError{Type: reflect.TypeFor[T]().String(), payload: v.InstanceResultValue(), hasPayload: true}
}
