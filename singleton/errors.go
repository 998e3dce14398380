package singleton

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidInstance marks every validation failure.
	ErrInvalidInstance = errors.New("singleton: instance failed validation")
	// ErrNoResult is returned by ResultAs when the failure carries no payload.
	ErrNoResult = errors.New("singleton: validation failure carries no result")
)

// ValidationError is returned by Acquire when a freshly constructed instance
// reported InstanceOK() == false. The instance was discarded.
type ValidationError struct {
	// Type is the wrapped type name.
	Type       string
	payload    any
	hasPayload bool
}

func (e *ValidationError) Error() string {
	if e.hasPayload {
		return fmt.Sprintf("singleton: %s failed validation: %v", e.Type, e.payload)
	}
	return fmt.Sprintf("singleton: %s failed validation", e.Type)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInstance }

// HasPayload reports whether the wrapped type is result bearing.
func (e *ValidationError) HasPayload() bool { return e.hasPayload }

// Payload returns the type-erased value reported by InstanceResultValue.
func (e *ValidationError) Payload() any { return e.payload }

// TypeMismatchError reports an attempt to unwrap a payload as the wrong type.
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("singleton: result is %v, not %v", e.Got, e.Want)
}

// ResultAs unwraps the payload of a validation failure as R. It returns
// ErrNoResult for payload-less failures, a *TypeMismatchError when R is wrong
// and err itself when err is not a validation failure.
func ResultAs[R any](err error) (R, error) {
	var zero R
	var validation *ValidationError
	if !errors.As(err, &validation) {
		return zero, err
	}
	if !validation.hasPayload {
		return zero, ErrNoResult
	}
	if validation.payload == nil && reflect.TypeFor[R]().Kind() == reflect.Interface {
		// A nil interface result has no dynamic type to assert on.
		return zero, nil
	}
	value, ok := validation.payload.(R)
	if !ok {
		return zero, &TypeMismatchError{Want: reflect.TypeFor[R](), Got: reflect.TypeOf(validation.payload)}
	}
	return value, nil
}

// MustResultAs is ResultAs that panics on any unwrap failure. Unwrapping as
// the wrong type is a programming error and is never silently ignored.
func MustResultAs[R any](err error) R {
	value, uerr := ResultAs[R](err)
	if uerr != nil {
		panic(uerr)
	}
	return value
}
