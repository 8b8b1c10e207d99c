package errors

import (
	stderrors "errors"
	"reflect"
)

// Ref is a reference to an error constructor: something that names a kind of
// error and can tell whether a given error belongs to it.
//
// *Kind is the primary implementation. TypeOf and Sentinel adapt error types
// and sentinel values that were not defined through this package.
type Ref interface {
	// Name identifies the referenced error kind.
	Name() string

	// Match reports whether err, or any error in its chain, belongs to the kind.
	Match(err error) bool
}

var _ Ref = (*Kind)(nil)

// typeRef references a Go error type E.
type typeRef[E error] struct {
	name string
}

// TypeOf returns a Ref whose Match uses errors.As with target type E.
//
// Example:
//
//	var ErrPath = errors.TypeOf[*fs.PathError]()
func TypeOf[E error]() Ref {
	return typeRef[E]{name: reflect.TypeOf((*E)(nil)).Elem().String()}
}

func (r typeRef[E]) Name() string {
	return r.name
}

func (r typeRef[E]) Match(err error) bool {
	if err == nil {
		return false
	}
	var target E
	return stderrors.As(err, &target)
}

// sentinelRef references a sentinel error value.
type sentinelRef struct {
	err error
}

// Sentinel returns a Ref whose Match uses errors.Is against err.
// A nil err yields a Ref that matches nothing.
//
// Example:
//
//	var EOF = errors.Sentinel(io.EOF)
func Sentinel(err error) Ref {
	return sentinelRef{err: err}
}

func (r sentinelRef) Name() string {
	if r.err == nil {
		return "<nil>"
	}
	return r.err.Error()
}

func (r sentinelRef) Match(err error) bool {
	if err == nil || r.err == nil {
		return false
	}
	return stderrors.Is(err, r.err)
}

// Unwrap returns the sentinel error so callers can recover it.
func (r sentinelRef) Unwrap() error {
	return r.err
}
