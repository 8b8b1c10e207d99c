package annotate

import (
	"reflect"
	"testing"

	"github.com/jmgilman/go/raises/errors"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.Define("Boom", errors.CodeExecutionFailed)

type boomService struct{}

func (s *boomService) Op() error { return errBoom.New("boom") }

type userStore struct{ users map[string]string }

func (s *userStore) Find(id string) (string, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return "", errNotFound.Newf("user %s not found", id)
}

func (s *userStore) Save(id, name string) error {
	if id == "" {
		return errInvalid.New("empty id")
	}
	s.users[id] = name
	return nil
}

func (s userStore) Count() int { return len(s.users) }

func (s *userStore) reset() { s.users = nil }

type canonicalType struct{}

func (canonicalType) Do() {}

type untouchedType struct{}

func (*untouchedType) A() {}
func (*untouchedType) B() {}

type unknownMethodType struct{}

func (*unknownMethodType) Real() {}

type sharedValueType struct{}

func (*sharedValueType) Op() error { return nil }

type sharedPointerType struct{}

func (*sharedPointerType) Op() error { return nil }

type lookupOnlyType struct{}

func (*lookupOnlyType) Op() error { return nil }

type repository interface {
	Get(id string) (string, error)
	Put(id, v string) error
}

func TestClassOf_Canonical(t *testing.T) {
	a := ClassOf[canonicalType]()
	b := ClassOf[canonicalType]()

	require.Same(t, a, b)
	require.Equal(t, reflect.TypeOf(canonicalType{}), a.Type())
	require.Equal(t, "annotate.canonicalType", a.Name())
}

func TestClassOf_MethodTable(t *testing.T) {
	c := ClassOf[userStore]()

	names := make([]string, 0)
	for _, m := range c.Methods() {
		names = append(names, m.Name())
	}

	require.Equal(t, []string{"Count", "Find", "Save"}, names)
	require.Nil(t, c.Method("reset"), "unexported methods are not in the table")
	require.NotNil(t, c.Method("Count"), "value receiver methods are in the table")
	require.Equal(t, reflect.TypeOf(userStore{}), c.Method("Find").Owner())
}

func TestAnnotateClass(t *testing.T) {
	before := &userStore{users: map[string]string{}}
	c := ClassOf[userStore]()

	got := AnnotateClass(c, Methods{
		"Find": {"NotFound": errNotFound},
		"Save": {"Invalid": errInvalid, "Storage": errStorage},
	})
	after := &userStore{users: map[string]string{}}

	require.Same(t, c, got)
	require.Same(t, errNotFound, MethodOf(before, "Find").Err("NotFound"))
	require.Same(t, errNotFound, MethodOf(after, "Find").Err("NotFound"))
	require.Same(t, MethodOf(before, "Save"), MethodOf(after, "Save"))
	require.Same(t, c.Method("Save"), MethodOf(*after, "Save"), "value and pointer share the entry")
	require.Equal(t, []string{"Invalid", "Storage"}, MethodOf(after, "Save").Slots().Names())
}

func TestAnnotateClass_ReturnedErrorMatchesSlot(t *testing.T) {
	AnnotateClass(ClassOf[boomService](), Methods{"Op": {"Boom": errBoom}})

	s := &boomService{}
	slot := MethodOf(s, "Op").Err("Boom")
	require.Same(t, errBoom, slot)

	err := s.Op()
	require.True(t, slot.Match(err))
	require.True(t, errors.Is(err, slot.(*errors.Kind)))

	name, ok := MethodOf(s, "Op").Slots().Match(err)
	require.True(t, ok)
	require.Equal(t, "Boom", name)
}

func TestAnnotateClass_UnknownMethod(t *testing.T) {
	c := ClassOf[unknownMethodType]()

	require.NotPanics(t, func() {
		AnnotateClass(c, Methods{
			"noSuchMethod": {"X": errBoom},
			"NoSuchMethod": {"X": errBoom},
		})
	})

	require.Nil(t, c.Method("noSuchMethod"))
	require.Nil(t, c.Method("NoSuchMethod"))
	require.Nil(t, MethodOf(&unknownMethodType{}, "NoSuchMethod"))
	require.Nil(t, MethodOf(&unknownMethodType{}, "NoSuchMethod").Err("X"))
	require.Len(t, c.Methods(), 1)
	require.Zero(t, c.Method("Real").Slots().Len())
}

func TestAnnotateClass_OtherMethodsUntouched(t *testing.T) {
	c := AnnotateClass(ClassOf[untouchedType](), Methods{"A": {"Boom": errBoom}})

	require.Same(t, errBoom, c.Method("A").Err("Boom"))
	require.Zero(t, c.Method("B").Slots().Len())
}

func TestAnnotateClass_Overwrite(t *testing.T) {
	type overwriteType struct{ untouchedType }
	c := ClassOf[overwriteType]()

	AnnotateClass(c, Methods{"A": {"K": errNotFound}})
	AnnotateClass(c, Methods{"A": {"K": errStorage}})

	require.Same(t, errStorage, c.Method("A").Err("K"))
}

func TestAnnotateClass_Nil(t *testing.T) {
	var c *Class[userStore]

	require.NotPanics(t, func() {
		require.Nil(t, AnnotateClass(c, Methods{"Find": {"X": errBoom}}))
	})
	require.Nil(t, c.Method("Find"))
}

func TestAnnotateClass_Interface(t *testing.T) {
	c := AnnotateClass(ClassOf[repository](), Methods{
		"Get": {"NotFound": errNotFound},
	})

	require.Same(t, errNotFound, c.Method("Get").Err("NotFound"))
	require.Nil(t, c.Method("Get").Func())
	require.Len(t, c.Methods(), 2)
}

func TestMethod_Func(t *testing.T) {
	fn, ok := ClassOf[boomService]().Method("Op").Func().(func(*boomService) error)
	require.True(t, ok)
	require.True(t, errBoom.Match(fn(&boomService{})))
}

func TestMethodOf_Nil(t *testing.T) {
	require.Nil(t, MethodOf(nil, "Find"))
	require.Nil(t, MethodOf(42, "Find"))
}

func TestClassOf_PointerSharesTable(t *testing.T) {
	AnnotateClass(ClassOf[sharedValueType](), Methods{"Op": {"Boom": errBoom}})
	require.Same(t, errBoom, MethodOf(&sharedValueType{}, "Op").Err("Boom"))

	ptr := ClassOf[*sharedValueType]()

	require.Same(t, errBoom, MethodOf(&sharedValueType{}, "Op").Err("Boom"))
	require.Same(t, ClassOf[sharedValueType]().Method("Op"), ptr.Method("Op"))
	require.Equal(t, "annotate.sharedValueType", ptr.Name())
}

func TestClassOf_AnnotatePointerReadValue(t *testing.T) {
	AnnotateClass(ClassOf[*sharedPointerType](), Methods{"Op": {"Boom": errBoom}})

	require.Same(t, errBoom, MethodOf(sharedPointerType{}, "Op").Err("Boom"))
	require.Same(t, errBoom, MethodOf(&sharedPointerType{}, "Op").Err("Boom"))
	require.Same(t, errBoom, ClassOf[sharedPointerType]().Method("Op").Err("Boom"))

	var described int
	for _, info := range Describe() {
		if info.Type == "annotate.sharedPointerType" {
			described++
		}
	}
	require.Equal(t, 1, described)
}

func TestMethodOf_DoesNotRegister(t *testing.T) {
	require.Nil(t, MethodOf(&lookupOnlyType{}, "Op"))
	require.Nil(t, MethodOf(42, "Find"))
	require.Nil(t, classes.lookup(reflect.TypeOf(lookupOnlyType{})))
	require.Nil(t, classes.lookup(reflect.TypeOf(0)))

	ClassOf[lookupOnlyType]()
	require.NotNil(t, MethodOf(&lookupOnlyType{}, "Op"))
}

func TestClass_NilReceiver(t *testing.T) {
	var c *Class[userStore]

	require.NotPanics(t, func() {
		require.Empty(t, c.Name())
		require.Nil(t, c.Type())
		require.Nil(t, c.Methods())
		require.Nil(t, c.Method("Find"))
	})
}
