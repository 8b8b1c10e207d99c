package annotate

import (
	"reflect"
	"runtime"

	"github.com/jmgilman/go/raises/errors"
)

// Func is an annotated callable: the original function plus the error
// constructors attached to it. Go functions cannot carry fields, so the
// wrapper is the identity that annotation preserves.
type Func[F any] struct {
	fn    F
	slots Slots
}

// NewFunc wraps fn without attaching any errors.
func NewFunc[F any](fn F) *Func[F] {
	return &Func[F]{fn: fn}
}

// WrapFunc wraps fn and attaches errs in one step.
//
// Example:
//
//	var FindUser = annotate.WrapFunc(findUser, annotate.Errors{
//	    "NotFound": ErrUserNotFound,
//	    "Storage":  ErrStorage,
//	})
//
//	user, err := FindUser.Fn()(ctx, id)
//	if FindUser.Err("NotFound").Match(err) { ... }
func WrapFunc[F any](fn F, errs Errors) *Func[F] {
	return AnnotateFunc(NewFunc(fn), errs)
}

// AnnotateFunc attaches every entry of errs to fn, overwriting slots that are
// already present, and returns fn itself.
// A nil fn is returned unchanged.
func AnnotateFunc[F any](fn *Func[F], errs Errors) *Func[F] {
	if fn == nil {
		return fn
	}
	fn.slots.merge(fn.name(), errs)
	return fn
}

// Fn returns the wrapped function so it can be called.
// A nil f yields the zero value of F.
func (f *Func[F]) Fn() F {
	if f == nil {
		var zero F
		return zero
	}
	return f.fn
}

// Err returns the constructor attached under slot, or nil.
func (f *Func[F]) Err(slot string) errors.Ref {
	if f == nil {
		return nil
	}
	return f.slots.Lookup(slot)
}

// Slots returns the attached error slots.
func (f *Func[F]) Slots() *Slots {
	if f == nil {
		return nil
	}
	return &f.slots
}

func (f *Func[F]) annotateErrors(errs Errors) {
	AnnotateFunc(f, errs)
}

func (f *Func[F]) raises() *Slots {
	return f.Slots()
}

// name returns the runtime name of the wrapped function for log output.
func (f *Func[F]) name() string {
	v := reflect.ValueOf(f.fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return reflect.TypeOf((*F)(nil)).Elem().String()
	}
	if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
		return rf.Name()
	}
	return v.Type().String()
}
