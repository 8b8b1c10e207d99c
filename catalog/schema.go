package catalog

import (
	"cuelang.org/go/cue"
)

// schemaSource is the CUE schema every catalog document must satisfy.
const schemaSource = `
#Kind: {
	code:            string & != ""
	classification?: "RETRYABLE" | "PERMANENT"
	message?:        string
}

#Catalog: {
	kinds?: [string]: #Kind
	funcs?: [string]: [string]: string
	types?: [string]: [string]: [string]: string
}
`

// compileSchema compiles the catalog schema in cueCtx and returns #Catalog.
func compileSchema(cueCtx *cue.Context) (cue.Value, error) {
	v := cueCtx.CompileString(schemaSource, cue.Filename("catalog-schema.cue"))
	if err := v.Err(); err != nil {
		return cue.Value{}, ErrBuild.Wrap(err, "failed to compile catalog schema")
	}
	return v.LookupPath(cue.ParsePath("#Catalog")), nil
}

// Schema returns the catalog schema source, for tooling and documentation.
func Schema() string {
	return schemaSource
}
