/*
Package catalog declares error kinds and error annotations in CUE.

A catalog file defines kinds once and refers to them by name from function and
type declarations:

	kinds: {
		UserNotFound: {code: "NOT_FOUND", message: "user not found"}
		Storage:      {code: "DATABASE_ERROR"}
	}

	funcs: FindUser: {
		NotFound: "UserNotFound"
		Storage:  "Storage"
	}

	types: UserService: {
		Find:   {NotFound: "UserNotFound"}
		Create: {Storage: "Storage"}
	}

Every document is validated against Schema before it is decoded. Codes must be
one of the predefined errors codes, and every slot must reference a kind
declared in the same catalog.

# Loading

	loader := catalog.NewLoader(osfs.New("."))
	cat, err := loader.LoadFile(ctx, "errors.cue")
	if err != nil {
	    return err
	}

LoadFiles reads several files concurrently and merges them in order, later
files overriding earlier ones. LoadDir unifies every .cue file in a directory
using CUE semantics, so conflicting declarations fail.

# Applying

	var FindUser = catalog.ApplyFunc(cat, "FindUser", annotate.NewFunc(findUser))
	catalog.ApplyClass[UserService](cat, "UserService")

Names missing from the catalog are skipped, matching the annotate package.

# Encoding

EncodeYAML and EncodeJSON render a catalog back to its document form. Export
renders every annotation registered in the process as a YAML manifest.

All failures are errors.PlatformError values of the kinds ErrLoad, ErrBuild,
ErrValidation, ErrDecode, ErrEncode and ErrResolve.
*/
package catalog
