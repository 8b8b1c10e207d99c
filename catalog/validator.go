package catalog

import (
	"context"
	"fmt"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// ValidationOptions configures how catalog documents are checked against the schema.
type ValidationOptions struct {
	// Concrete requires all values to be concrete (fully specified).
	Concrete bool

	// Final resolves default values before validation.
	Final bool

	// All reports all errors instead of stopping at the first one.
	All bool
}

// DefaultValidationOptions requires concrete values, finalizes defaults and
// reports every issue.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		Concrete: true,
		Final:    true,
		All:      true,
	}
}

func (o ValidationOptions) cueOptions() []cue.Option {
	var opts []cue.Option
	if o.Concrete {
		opts = append(opts, cue.Concrete(true))
	}
	if o.Final {
		opts = append(opts, cue.Final())
	}
	if o.All {
		opts = append(opts, cue.All())
	}
	return opts
}

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	// Path is the field path where the error occurred (e.g., ["kinds", "Boom", "code"]).
	Path []string

	// Message is the human-readable error message.
	Message string

	// Position is the source position if available.
	Position token.Pos
}

// validate unifies data with schema and checks the result.
// Returns the unified value so it can be decoded.
func validate(ctx context.Context, schema, data cue.Value, filename string, opts ValidationOptions) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, ErrValidation.WrapWithContext(err, "context cancelled", makeContext("filename", filename))
	}

	unified := schema.Unify(data)

	// Validate directly rather than checking unified.Err() first so that All
	// can collect every issue.
	if err := unified.Validate(opts.cueOptions()...); err != nil {
		return cue.Value{}, ErrValidation.WrapWithContext(
			err,
			"catalog does not match schema",
			makeContext(
				"filename", filename,
				"details", cueerrors.Details(err, nil),
				"issues", extractValidationIssues(err),
			),
		)
	}

	return unified, nil
}

// extractValidationIssues flattens a CUE error into structured issues.
func extractValidationIssues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}

	var issues []ValidationIssue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()

		var pos token.Pos
		if positions := e.InputPositions(); len(positions) > 0 {
			pos = positions[0]
		}

		issues = append(issues, ValidationIssue{
			Path:     e.Path(),
			Message:  fmt.Sprintf(format, args...),
			Position: pos,
		})
	}

	return issues
}
