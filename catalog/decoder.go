package catalog

import (
	"context"

	"cuelang.org/go/cue"
)

// document is the decoded form of one catalog file.
type document struct {
	Kinds map[string]kindDecl                     `json:"kinds,omitempty"`
	Funcs map[string]map[string]string            `json:"funcs,omitempty"`
	Types map[string]map[string]map[string]string `json:"types,omitempty"`
}

type kindDecl struct {
	Code           string `json:"code"`
	Classification string `json:"classification,omitempty"`
	Message        string `json:"message,omitempty"`
}

// decode converts a validated catalog value into a document.
func decode(ctx context.Context, value cue.Value, filename string) (*document, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrDecode.WrapWithContext(err, "context cancelled before decoding", makeContext("filename", filename))
	}

	var doc document
	if err := value.Decode(&doc); err != nil {
		return nil, ErrDecode.WrapWithContext(
			err,
			"failed to decode catalog",
			makeContext("filename", filename, "value_kind", value.Kind().String()),
		)
	}
	return &doc, nil
}

// merge copies other into d. Kinds are replaced by name; func and method
// slots are merged one slot at a time, with other winning.
func (d *document) merge(other *document) {
	if other == nil {
		return
	}

	for name, k := range other.Kinds {
		if d.Kinds == nil {
			d.Kinds = make(map[string]kindDecl)
		}
		d.Kinds[name] = k
	}

	for name, slots := range other.Funcs {
		if d.Funcs == nil {
			d.Funcs = make(map[string]map[string]string)
		}
		if d.Funcs[name] == nil {
			d.Funcs[name] = make(map[string]string, len(slots))
		}
		for slot, kind := range slots {
			d.Funcs[name][slot] = kind
		}
	}

	for typeName, methods := range other.Types {
		if d.Types == nil {
			d.Types = make(map[string]map[string]map[string]string)
		}
		if d.Types[typeName] == nil {
			d.Types[typeName] = make(map[string]map[string]string, len(methods))
		}
		for method, slots := range methods {
			if d.Types[typeName][method] == nil {
				d.Types[typeName][method] = make(map[string]string, len(slots))
			}
			for slot, kind := range slots {
				d.Types[typeName][method][slot] = kind
			}
		}
	}
}
