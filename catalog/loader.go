package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Loader reads catalog documents from a filesystem.
//
// Each load compiles into its own CUE context, so a Loader is safe for
// concurrent use.
type Loader struct {
	fs         billy.Filesystem
	logger     zerolog.Logger
	validation ValidationOptions
}

// NewLoader creates a loader reading from filesystem.
func NewLoader(filesystem billy.Filesystem, opts ...Option) *Loader {
	l := &Loader{
		fs:         filesystem,
		logger:     zerolog.Nop(),
		validation: DefaultValidationOptions(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadBytes loads a catalog from CUE (or JSON) source.
// The filename is used only in error context and may be empty.
func (l *Loader) LoadBytes(ctx context.Context, source []byte, filename string) (*Catalog, error) {
	if filename == "" {
		filename = "<input>"
	}

	doc, err := l.parse(ctx, cuecontext.New(), source, filename)
	if err != nil {
		return nil, err
	}
	return resolve(doc)
}

// LoadFile loads a single catalog file. The path is relative to the
// filesystem root.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Catalog, error) {
	doc, err := l.loadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	return resolve(doc)
}

// LoadFiles loads several catalog files concurrently and merges them in
// argument order: a later file replaces kinds of the same name and overrides
// individual slots declared by earlier files. References are resolved after
// merging, so a file may use kinds declared in another.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) (*Catalog, error) {
	if len(paths) == 0 {
		return nil, ErrLoad.New("no catalog files given")
	}

	docs := make([]*document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			doc, err := l.loadDocument(gctx, path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &document{}
	for _, doc := range docs {
		merged.merge(doc)
	}
	return resolve(merged)
}

// LoadDir loads every .cue file directly inside dir (non-recursive) and
// unifies them into one catalog. Unlike LoadFiles, conflicting declarations
// are an error rather than an override.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrLoad.WrapWithContext(err, "context cancelled", makeContext("dir", dir))
	}

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, ErrLoad.WrapWithContext(err, "failed to read catalog directory", makeContext("dir", dir))
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".cue" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, ErrLoad.WrapWithContext(
			fmt.Errorf("no CUE files found"),
			"catalog directory contains no .cue files",
			makeContext("dir", dir),
		)
	}

	cueCtx := cuecontext.New()
	var unified cue.Value
	for i, path := range paths {
		v, err := l.compileFile(ctx, cueCtx, path)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			unified = v
			continue
		}
		unified = unified.Unify(v)
	}

	doc, err := l.check(ctx, cueCtx, unified, dir)
	if err != nil {
		return nil, err
	}
	return resolve(doc)
}

func (l *Loader) loadDocument(ctx context.Context, path string) (*document, error) {
	source, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return l.parse(ctx, cuecontext.New(), source, path)
}

func (l *Loader) compileFile(ctx context.Context, cueCtx *cue.Context, path string) (cue.Value, error) {
	source, err := l.read(ctx, path)
	if err != nil {
		return cue.Value{}, err
	}
	return compile(cueCtx, source, path)
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrLoad.WrapWithContext(err, "context cancelled", makeContext("file_path", path))
	}

	data, err := util.ReadFile(l.fs, path)
	if err != nil {
		return nil, ErrLoad.WrapWithContext(err, "failed to read catalog file", makeContext("file_path", path))
	}
	return data, nil
}

// parse compiles, validates and decodes one source.
func (l *Loader) parse(ctx context.Context, cueCtx *cue.Context, source []byte, filename string) (*document, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrBuild.WrapWithContext(err, "context cancelled", makeContext("filename", filename))
	}

	v, err := compile(cueCtx, source, filename)
	if err != nil {
		return nil, err
	}
	return l.check(ctx, cueCtx, v, filename)
}

// check validates v against the schema and decodes it.
func (l *Loader) check(ctx context.Context, cueCtx *cue.Context, v cue.Value, filename string) (*document, error) {
	schema, err := compileSchema(cueCtx)
	if err != nil {
		return nil, err
	}

	unified, err := validate(ctx, schema, v, filename, l.validation)
	if err != nil {
		return nil, err
	}

	doc, err := decode(ctx, unified, filename)
	if err != nil {
		return nil, err
	}

	l.logger.Debug().
		Str("filename", filename).
		Int("kinds", len(doc.Kinds)).
		Int("funcs", len(doc.Funcs)).
		Int("types", len(doc.Types)).
		Msg("catalog loaded")

	return doc, nil
}

func compile(cueCtx *cue.Context, source []byte, filename string) (cue.Value, error) {
	v := cueCtx.CompileBytes(source, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return cue.Value{}, ErrBuild.WrapWithContext(
			err,
			"failed to compile catalog source",
			makeContext("filename", filename, "source_size", len(source)),
		)
	}
	return v, nil
}
