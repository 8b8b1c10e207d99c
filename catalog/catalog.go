package catalog

import (
	"sort"

	"github.com/jmgilman/go/raises/annotate"
	"github.com/jmgilman/go/raises/errors"
)

// Catalog is a resolved set of error kinds and the annotation configs that
// refer to them. Kinds are created once per catalog, so every config in the
// catalog shares the same *errors.Kind for a given name.
type Catalog struct {
	doc   *document
	kinds map[string]*errors.Kind
	funcs map[string]annotate.Errors
	types map[string]annotate.Methods
}

// Kind returns the kind declared under name.
func (c *Catalog) Kind(name string) (*errors.Kind, bool) {
	k, ok := c.kinds[name]
	return k, ok
}

// Kinds returns the declared kind names in sorted order.
func (c *Catalog) Kinds() []string {
	return sortedKeys(c.kinds)
}

// Func returns the slot configuration declared for the function name, or nil.
func (c *Catalog) Func(name string) annotate.Errors {
	return c.funcs[name]
}

// Funcs returns the declared function names in sorted order.
func (c *Catalog) Funcs() []string {
	return sortedKeys(c.funcs)
}

// Type returns the method configuration declared for the type name, or nil.
func (c *Catalog) Type(name string) annotate.Methods {
	return c.types[name]
}

// Types returns the declared type names in sorted order.
func (c *Catalog) Types() []string {
	return sortedKeys(c.types)
}

// ApplyFunc annotates fn with the errors declared for the function name and
// returns fn. An unknown name leaves fn untouched.
//
// Example:
//
//	var FindUser = catalog.ApplyFunc(cat, "FindUser", annotate.NewFunc(findUser))
func ApplyFunc[F any](c *Catalog, name string, fn *annotate.Func[F]) *annotate.Func[F] {
	if c == nil {
		return fn
	}
	return annotate.AnnotateFunc(fn, c.Func(name))
}

// ApplyClass annotates the method table of T with the errors declared for the
// type name and returns it. Unknown type or method names are skipped.
//
// Example:
//
//	catalog.ApplyClass[UserService](cat, "UserService")
func ApplyClass[T any](c *Catalog, name string) *annotate.Class[T] {
	class := annotate.ClassOf[T]()
	if c == nil {
		return class
	}
	return annotate.AnnotateClass(class, c.Type(name))
}

// resolve turns a document into a Catalog, creating one kind per declaration.
func resolve(doc *document) (*Catalog, error) {
	c := &Catalog{
		doc:   doc,
		kinds: make(map[string]*errors.Kind, len(doc.Kinds)),
		funcs: make(map[string]annotate.Errors, len(doc.Funcs)),
		types: make(map[string]annotate.Methods, len(doc.Types)),
	}

	for _, name := range sortedKeys(doc.Kinds) {
		k, err := defineKind(name, doc.Kinds[name])
		if err != nil {
			return nil, err
		}
		c.kinds[name] = k
	}

	for _, name := range sortedKeys(doc.Funcs) {
		errs, err := c.slots(doc.Funcs[name], "funcs", name)
		if err != nil {
			return nil, err
		}
		c.funcs[name] = errs
	}

	for _, typeName := range sortedKeys(doc.Types) {
		methods := doc.Types[typeName]
		cfg := make(annotate.Methods, len(methods))
		for _, method := range sortedKeys(methods) {
			errs, err := c.slots(methods[method], "types", typeName+"."+method)
			if err != nil {
				return nil, err
			}
			cfg[method] = errs
		}
		c.types[typeName] = cfg
	}

	return c, nil
}

func defineKind(name string, decl kindDecl) (*errors.Kind, error) {
	code, ok := errors.ParseCode(decl.Code)
	if !ok {
		return nil, errors.WithContextMap(
			ErrResolve.Newf("kind %s has unknown code %q", name, decl.Code),
			makeContext("kind", name, "code", decl.Code),
		)
	}

	var opts []errors.KindOption
	if decl.Classification != "" {
		class, ok := errors.ParseClassification(decl.Classification)
		if !ok {
			return nil, errors.WithContextMap(
				ErrResolve.Newf("kind %s has unknown classification %q", name, decl.Classification),
				makeContext("kind", name, "classification", decl.Classification),
			)
		}
		opts = append(opts, errors.WithKindClassification(class))
	}
	if decl.Message != "" {
		opts = append(opts, errors.WithMessage(decl.Message))
	}

	return errors.Define(name, code, opts...), nil
}

// slots resolves slot -> kind name references for one function or method.
func (c *Catalog) slots(decl map[string]string, section, owner string) (annotate.Errors, error) {
	errs := make(annotate.Errors, len(decl))
	for _, slot := range sortedKeys(decl) {
		kindName := decl[slot]
		k, ok := c.kinds[kindName]
		if !ok {
			return nil, errors.WithContextMap(
				ErrResolve.Newf("%s %s: slot %s references undefined kind %q", section, owner, slot, kindName),
				makeContext("section", section, "owner", owner, "slot", slot, "kind", kindName),
			)
		}
		errs[slot] = k
	}
	return errs, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
