package errors

import "fmt"

// platformError is the concrete implementation of PlatformError.
// It is private to enforce construction through a Kind.
type platformError struct {
	kind           *Kind
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Kind() *Kind {
	return e.kind
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil when empty.
func (e *platformError) Context() map[string]interface{} {
	return cloneContext(e.context)
}

func (e *platformError) Unwrap() error {
	return e.cause
}

// Is makes errors.Is(err, kind) report whether err was constructed by kind.
func (e *platformError) Is(target error) bool {
	k, ok := target.(*Kind)
	return ok && e.kind != nil && e.kind == k
}

// with returns a shallow copy of e so callers can change a single field
// without mutating the original.
func (e *platformError) with(fn func(*platformError)) *platformError {
	cp := *e
	cp.context = cloneContext(e.context)
	fn(&cp)
	return &cp
}

// cloneContext returns a copy of ctx, or nil when ctx is empty.
func cloneContext(ctx map[string]interface{}) map[string]interface{} {
	if len(ctx) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
