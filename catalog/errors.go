package catalog

import (
	"github.com/jmgilman/go/raises/annotate"
	"github.com/jmgilman/go/raises/errors"
)

// Error kinds returned by this package.
var (
	// ErrLoad reports that catalog files could not be read.
	ErrLoad = errors.Define("CatalogLoad", errors.CodeCatalogLoadFailed)

	// ErrBuild reports that catalog source failed to compile.
	ErrBuild = errors.Define("CatalogBuild", errors.CodeCatalogBuildFailed)

	// ErrValidation reports that a catalog does not satisfy the catalog schema.
	ErrValidation = errors.Define("CatalogValidation", errors.CodeCatalogValidationFailed)

	// ErrDecode reports that a validated catalog could not be decoded.
	ErrDecode = errors.Define("CatalogDecode", errors.CodeCatalogDecodeFailed)

	// ErrEncode reports that a catalog or manifest could not be rendered.
	ErrEncode = errors.Define("CatalogEncode", errors.CodeCatalogEncodeFailed)

	// ErrResolve reports a reference to an undefined kind or an unknown code.
	ErrResolve = errors.Define("CatalogResolve", errors.CodeCatalogResolveFailed)
)

func init() {
	parse := annotate.Errors{
		"Build":      ErrBuild,
		"Validation": ErrValidation,
		"Decode":     ErrDecode,
		"Resolve":    ErrResolve,
	}
	read := annotate.Errors{"Load": ErrLoad}
	for name, ref := range parse {
		read[name] = ref
	}

	annotate.AnnotateClass(annotate.ClassOf[Loader](), annotate.Methods{
		"LoadBytes": parse,
		"LoadFile":  read,
		"LoadFiles": read,
		"LoadDir":   read,
	})
}

// makeContext builds a context map from alternating keys and values.
// Non-string keys are skipped. Example: makeContext("path", "a.cue", "line", 42).
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{}, len(kvPairs)/2)
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}
