package annotate

import (
	"sort"
	"sync"

	"github.com/jmgilman/go/raises/errors"
)

// Slots holds the error constructors attached to one callable or method,
// keyed by slot name. The zero value is empty and ready to use; a nil *Slots
// behaves as empty for every read.
type Slots struct {
	mu   sync.RWMutex
	refs map[string]errors.Ref
}

// Get returns the constructor attached under name.
func (s *Slots) Get(name string) (errors.Ref, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.refs[name]
	return ref, ok
}

// Lookup returns the constructor attached under name, or nil when the slot
// was never annotated.
func (s *Slots) Lookup(name string) errors.Ref {
	ref, _ := s.Get(name)
	return ref
}

// Names returns the annotated slot names in sorted order.
func (s *Slots) Names() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.refs) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.refs))
	for name := range s.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of annotated slots.
func (s *Slots) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.refs)
}

// Match returns the first slot, in sorted name order, whose constructor
// matches err.
func (s *Slots) Match(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	for _, name := range s.Names() {
		if ref := s.Lookup(name); ref != nil && ref.Match(err) {
			return name, true
		}
	}
	return "", false
}

// Map returns a copy of the slots as an Errors map.
func (s *Slots) Map() Errors {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.refs) == 0 {
		return nil
	}
	out := make(Errors, len(s.refs))
	for name, ref := range s.refs {
		out[name] = ref
	}
	return out
}

// merge assigns every entry of errs, overwriting existing slots.
func (s *Slots) merge(owner string, errs Errors) {
	if len(errs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs == nil {
		s.refs = make(map[string]errors.Ref, len(errs))
	}
	for name, ref := range errs {
		if prev, ok := s.refs[name]; ok {
			log().Debug().
				Str("target", owner).
				Str("slot", name).
				Str("previous", refName(prev)).
				Str("current", refName(ref)).
				Msg("error slot overwritten")
		}
		s.refs[name] = ref
	}
}

func refName(ref errors.Ref) string {
	if ref == nil {
		return "<nil>"
	}
	return ref.Name()
}
