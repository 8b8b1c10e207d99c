package catalog

import (
	"context"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/jmgilman/go/raises/annotate"
	"gopkg.in/yaml.v3"
)

// EncodeYAML renders the catalog back to its document form as YAML.
func EncodeYAML(ctx context.Context, c *Catalog) ([]byte, error) {
	v, err := c.value(ctx)
	if err != nil {
		return nil, err
	}

	data, err := cueyaml.Encode(v)
	if err != nil {
		return nil, ErrEncode.Wrap(err, "failed to encode catalog to YAML")
	}
	return data, nil
}

// EncodeJSON renders the catalog back to its document form as JSON.
// The output can be loaded again with Loader.LoadBytes.
func EncodeJSON(ctx context.Context, c *Catalog) ([]byte, error) {
	v, err := c.value(ctx)
	if err != nil {
		return nil, err
	}

	data, err := v.MarshalJSON()
	if err != nil {
		return nil, ErrEncode.Wrap(err, "failed to encode catalog to JSON")
	}
	return data, nil
}

// value builds a concrete CUE value from the catalog's document.
func (c *Catalog) value(ctx context.Context) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, ErrEncode.Wrap(err, "context cancelled before encoding")
	}
	if c == nil || c.doc == nil {
		return cue.Value{}, ErrEncode.New("catalog is empty")
	}

	cueCtx := cuecontext.New()
	v := cueCtx.CompileString("{}")

	if len(c.doc.Kinds) > 0 {
		kinds := make(map[string]map[string]string, len(c.doc.Kinds))
		for name, k := range c.doc.Kinds {
			fields := map[string]string{"code": k.Code}
			if k.Classification != "" {
				fields["classification"] = k.Classification
			}
			if k.Message != "" {
				fields["message"] = k.Message
			}
			kinds[name] = fields
		}
		v = v.FillPath(cue.ParsePath("kinds"), kinds)
	}
	if len(c.doc.Funcs) > 0 {
		v = v.FillPath(cue.ParsePath("funcs"), c.doc.Funcs)
	}
	if len(c.doc.Types) > 0 {
		v = v.FillPath(cue.ParsePath("types"), c.doc.Types)
	}

	if err := v.Err(); err != nil {
		return cue.Value{}, ErrEncode.WrapWithContext(err, "failed to build catalog value", makeContext("error", err.Error()))
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return cue.Value{}, ErrEncode.Wrap(err, "catalog value is not concrete")
	}
	return v, nil
}

// Manifest lists the error annotations currently registered in the process.
type Manifest struct {
	Types []annotate.ClassInfo `json:"types" yaml:"types"`
}

// Export renders the process-wide annotation registry (annotate.Describe) as
// a YAML manifest.
func Export(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrEncode.Wrap(err, "context cancelled before export")
	}

	data, err := yaml.Marshal(Manifest{Types: annotate.Describe()})
	if err != nil {
		return nil, ErrEncode.Wrap(err, "failed to encode manifest")
	}
	return data, nil
}

// ExportTo writes the manifest produced by Export to w.
func ExportTo(ctx context.Context, w io.Writer) error {
	if w == nil {
		return ErrEncode.New("writer cannot be nil")
	}

	data, err := Export(ctx)
	if err != nil {
		return err
	}

	n, err := w.Write(data)
	if err != nil {
		return ErrEncode.WrapWithContext(err, "failed to write manifest", makeContext("bytes_written", n, "total_bytes", len(data)))
	}
	return nil
}
