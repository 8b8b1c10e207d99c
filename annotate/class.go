package annotate

import (
	"reflect"
	"sort"

	"github.com/jmgilman/go/raises/errors"
)

// Class is the method table of the Go type T: one entry per exported method,
// shared by every value of T. ClassOf returns the same *Class[T] for the same
// T, so annotating it is visible from every value, created before or after.
type Class[T any] struct {
	t *table
}

// Method is one entry of a method table. All values of the owning type share
// the same *Method.
type Method struct {
	owner  reflect.Type
	method reflect.Method
	slots  Slots
}

// ClassOf returns the method table of T.
//
// For struct and other non-pointer, non-interface types the table holds the
// method set of *T, which includes value-receiver methods. ClassOf[*T] returns
// a handle onto that same table. For interface types and named pointer types
// it holds the method set of T itself. Unexported methods are not part of the
// table.
func ClassOf[T any]() *Class[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return classes.handle(typ, func(t *table) any {
		return &Class[T]{t: t}
	}).(*Class[T])
}

// AnnotateClass attaches errors to the named methods of c and returns c.
//
// Method names that are not in the table are skipped: nothing is added for
// them and no error is reported. A nil c is returned unchanged.
//
// Example:
//
//	annotate.AnnotateClass(annotate.ClassOf[UserService](), annotate.Methods{
//	    "Find":   {"NotFound": ErrUserNotFound},
//	    "Create": {"Exists": ErrUserExists, "Storage": ErrStorage},
//	})
func AnnotateClass[T any](c *Class[T], cfg Methods) *Class[T] {
	if c == nil || c.t == nil {
		return c
	}
	c.t.annotate(cfg)
	return c
}

// Name returns the name of the table's type, qualified by its package.
// ClassOf[*T] and ClassOf[T] share a table, so both report T.
func (c *Class[T]) Name() string {
	if c == nil || c.t == nil {
		return ""
	}
	return c.t.typ.String()
}

// Type returns the table's reflect type.
func (c *Class[T]) Type() reflect.Type {
	if c == nil || c.t == nil {
		return nil
	}
	return c.t.typ
}

// Method returns the table entry for name, or nil if T has no such method.
func (c *Class[T]) Method(name string) *Method {
	if c == nil || c.t == nil {
		return nil
	}
	return c.t.methods[name]
}

// Methods returns every entry of the table sorted by name.
func (c *Class[T]) Methods() []*Method {
	if c == nil || c.t == nil {
		return nil
	}
	return c.t.sorted()
}

func (c *Class[T]) annotateMethods(cfg Methods) {
	AnnotateClass(c, cfg)
}

func (c *Class[T]) methodTable() *table {
	if c == nil {
		return nil
	}
	return c.t
}

// MethodOf returns the shared method entry named name for the type of
// instance. It returns nil when instance is nil, when its type has no such
// method, or when no table was created for the type through ClassOf. Lookups
// never register a type.
//
// A value and a pointer to it resolve to the same table.
//
// Example:
//
//	if ref := annotate.MethodOf(svc, "Find").Err("NotFound"); ref != nil && ref.Match(err) {
//	    // handle not found
//	}
func MethodOf(instance any, name string) *Method {
	typ := reflect.TypeOf(instance)
	if typ == nil {
		return nil
	}
	t := classes.lookup(typ)
	if t == nil {
		return nil
	}
	return t.methods[name]
}

// Name returns the method name.
func (m *Method) Name() string {
	return m.method.Name
}

// Owner returns the type whose method table holds this entry.
func (m *Method) Owner() reflect.Type {
	return m.owner
}

// Func returns the method expression as a function value whose first
// parameter is the receiver. Returns nil for interface methods.
func (m *Method) Func() any {
	if !m.method.Func.IsValid() {
		return nil
	}
	return m.method.Func.Interface()
}

// Err returns the constructor attached under slot, or nil.
func (m *Method) Err(slot string) errors.Ref {
	if m == nil {
		return nil
	}
	return m.slots.Lookup(slot)
}

// Slots returns the attached error slots.
func (m *Method) Slots() *Slots {
	if m == nil {
		return nil
	}
	return &m.slots
}

// table is the untyped method table behind a Class.
type table struct {
	typ     reflect.Type
	methods map[string]*Method
}

func newTable(typ reflect.Type) *table {
	set := typ
	switch typ.Kind() {
	case reflect.Interface, reflect.Pointer:
	default:
		set = reflect.PointerTo(typ)
	}

	t := &table{typ: typ, methods: make(map[string]*Method, set.NumMethod())}
	for i := 0; i < set.NumMethod(); i++ {
		m := set.Method(i)
		t.methods[m.Name] = &Method{owner: typ, method: m}
	}
	return t
}

func (t *table) annotate(cfg Methods) {
	for name, errs := range cfg {
		m, ok := t.methods[name]
		if !ok {
			log().Debug().
				Str("class", t.typ.String()).
				Str("method", name).
				Msg("skipping annotation for unknown method")
			continue
		}
		m.slots.merge(t.typ.String()+"."+name, errs)
	}
}

func (t *table) sorted() []*Method {
	out := make([]*Method, 0, len(t.methods))
	for _, m := range t.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}
