package annotate

import "github.com/jmgilman/go/raises/errors"

// Errors maps error-slot names to the error constructors an operation may
// produce. It is the configuration for a callable target.
type Errors map[string]errors.Ref

// Methods maps method names to the Errors configuration for that method.
// It is the configuration for a class target.
type Methods map[string]Errors

// errorsConfig accepts the map shapes WithErrors understands for callables.
func errorsConfig(config any) (Errors, bool) {
	switch c := config.(type) {
	case Errors:
		return c, true
	case map[string]errors.Ref:
		return Errors(c), true
	case map[string]*errors.Kind:
		errs := make(Errors, len(c))
		for name, k := range c {
			errs[name] = k
		}
		return errs, true
	default:
		return nil, false
	}
}

// methodsConfig accepts the map shapes WithErrors understands for classes.
func methodsConfig(config any) (Methods, bool) {
	switch c := config.(type) {
	case Methods:
		return c, true
	case map[string]Errors:
		return Methods(c), true
	case map[string]map[string]errors.Ref:
		cfg := make(Methods, len(c))
		for method, errs := range c {
			cfg[method] = Errors(errs)
		}
		return cfg, true
	case map[string]map[string]*errors.Kind:
		cfg := make(Methods, len(c))
		for method, kinds := range c {
			errs := make(Errors, len(kinds))
			for name, k := range kinds {
				errs[name] = k
			}
			cfg[method] = errs
		}
		return cfg, true
	default:
		return nil, false
	}
}
