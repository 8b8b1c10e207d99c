package annotate

import (
	"reflect"
	"sort"
	"sync"
)

// registry holds one method table per Go type, plus the typed Class handle
// created for it by ClassOf.
type registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*entry
}

type entry struct {
	table  *table
	handle any
}

var classes = &registry{entries: make(map[reflect.Type]*entry)}

// lookup returns the table for typ if one exists. A pointer type falls back
// to the table of its element type.
func (r *registry) lookup(typ reflect.Type) *table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.entries[typ]; ok {
		return e.table
	}
	if e, ok := r.entries[canonical(typ)]; ok {
		return e.table
	}
	return nil
}

// handle returns the typed handle for typ, creating the table and the handle
// as needed. newHandle is called at most once per type.
func (r *registry) handle(typ reflect.Type, newHandle func(*table) any) any {
	r.mu.RLock()
	if e, ok := r.entries[typ]; ok && e.handle != nil {
		r.mu.RUnlock()
		return e.handle
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entryLocked(typ)
	if e.handle == nil {
		e.handle = newHandle(e.table)
	}
	return e.handle
}

// entryLocked returns the entry for typ, creating it if needed. An unnamed
// pointer to a concrete type shares the table of its element type.
func (r *registry) entryLocked(typ reflect.Type) *entry {
	if e, ok := r.entries[typ]; ok {
		return e
	}

	var e *entry
	if canon := canonical(typ); canon != typ {
		e = &entry{table: r.entryLocked(canon).table}
	} else {
		e = &entry{table: newTable(typ)}
	}
	r.entries[typ] = e
	return e
}

// canonical returns the type whose table typ uses: T for an unnamed *T where T
// is neither an interface nor a pointer, typ otherwise.
func canonical(typ reflect.Type) reflect.Type {
	if typ.Kind() != reflect.Pointer || typ.Name() != "" {
		return typ
	}
	switch typ.Elem().Kind() {
	case reflect.Interface, reflect.Pointer:
		return typ
	default:
		return typ.Elem()
	}
}

// snapshot returns every distinct table sorted by type name.
func (r *registry) snapshot() []*table {
	r.mu.RLock()
	seen := make(map[*table]struct{}, len(r.entries))
	out := make([]*table, 0, len(r.entries))
	for _, e := range r.entries {
		if _, ok := seen[e.table]; ok {
			continue
		}
		seen[e.table] = struct{}{}
		out = append(out, e.table)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].typ.String() < out[j].typ.String()
	})
	return out
}

// ClassInfo describes the annotated methods of one type.
type ClassInfo struct {
	// Type is the package-qualified type name.
	Type string `json:"type" yaml:"type"`

	// Methods lists annotated methods sorted by name.
	Methods []MethodInfo `json:"methods" yaml:"methods"`
}

// MethodInfo describes the error slots of one method.
type MethodInfo struct {
	Name string `json:"name" yaml:"name"`

	// Errors maps slot names to constructor names.
	Errors map[string]string `json:"errors" yaml:"errors"`
}

// Describe lists every type that has at least one annotated method, sorted by
// type name.
func Describe() []ClassInfo {
	var out []ClassInfo
	for _, t := range classes.snapshot() {
		var methods []MethodInfo
		for _, m := range t.sorted() {
			errs := m.slots.Map()
			if len(errs) == 0 {
				continue
			}
			info := MethodInfo{Name: m.Name(), Errors: make(map[string]string, len(errs))}
			for slot, ref := range errs {
				info.Errors[slot] = refName(ref)
			}
			methods = append(methods, info)
		}
		if len(methods) > 0 {
			out = append(out, ClassInfo{Type: t.typ.String(), Methods: methods})
		}
	}
	return out
}
