package annotate

import "reflect"

// classTarget is implemented by every *Class[T].
type classTarget interface {
	annotateMethods(Methods)
	methodTable() *table
}

// funcTarget is implemented by every *Func[F].
type funcTarget interface {
	annotateErrors(Errors)
	raises() *Slots
}

// IsClass reports whether v is a class method table (*Class[T] for any T).
// Nil pointers are not classes.
func IsClass(v any) bool {
	c, ok := v.(classTarget)
	return ok && c.methodTable() != nil
}

// IsFunc reports whether v is an annotated callable (*Func[F] for any F).
// Nil pointers are not annotated callables.
func IsFunc(v any) bool {
	f, ok := v.(funcTarget)
	return ok && f.raises() != nil
}

// IsCallable reports whether v can be called: an annotated callable or a
// non-nil Go function value.
func IsCallable(v any) bool {
	if IsFunc(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// WithErrors annotates target with config and returns target itself.
//
// A *Class[T] target takes a Methods config (or map[string]Errors,
// map[string]map[string]errors.Ref, map[string]map[string]*errors.Kind) and is
// annotated with AnnotateClass. A *Func[F] target takes an Errors config (or
// map[string]errors.Ref, map[string]*errors.Kind) and is annotated with
// AnnotateFunc. Any other combination leaves target untouched; plain Go
// functions must be wrapped with NewFunc or WrapFunc first.
//
// WithErrors never panics and never allocates a replacement target.
func WithErrors(target, config any) any {
	switch t := target.(type) {
	case classTarget:
		if cfg, ok := methodsConfig(config); ok && t.methodTable() != nil {
			t.annotateMethods(cfg)
		}
	case funcTarget:
		if errs, ok := errorsConfig(config); ok && t.raises() != nil {
			t.annotateErrors(errs)
		}
	}
	return target
}

// Raises returns the slot names attached to target, which may be a *Func[F]
// or a *Method. Returns nil for anything else.
func Raises(target any) []string {
	switch t := target.(type) {
	case *Method:
		return t.Slots().Names()
	case funcTarget:
		return t.raises().Names()
	default:
		return nil
	}
}
