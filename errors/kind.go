package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a defined error kind: the error-constructor reference attached to
// annotated functions and methods.
//
// A Kind constructs PlatformError values (New, Newf, Wrap, Wrapf) and answers
// membership for any error (Match, or errors.Is(err, kind)). Kinds are compared
// by pointer, so define each one once, typically as a package-level variable.
//
// Kind implements error only so that it can be used as an errors.Is target.
type Kind struct {
	name           string
	code           ErrorCode
	classification ErrorClassification
	message        string
}

// KindOption configures a Kind at definition time.
type KindOption func(*Kind)

// WithKindClassification overrides the classification derived from the code.
func WithKindClassification(c ErrorClassification) KindOption {
	return func(k *Kind) {
		k.classification = c
	}
}

// WithMessage sets the message used by New when it is called with an empty message.
func WithMessage(message string) KindOption {
	return func(k *Kind) {
		k.message = message
	}
}

// Define creates a new error kind.
//
// Example:
//
//	var ErrUserNotFound = errors.Define("UserNotFound", errors.CodeNotFound,
//	    errors.WithMessage("user not found"))
func Define(name string, code ErrorCode, opts ...KindOption) *Kind {
	k := &Kind{
		name:           name,
		code:           code,
		classification: DefaultClassification(code),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the kind's name, or "<nil>" for a nil kind.
func (k *Kind) Name() string {
	if k == nil {
		return "<nil>"
	}
	return k.name
}

// Code returns the code given to errors of this kind.
func (k *Kind) Code() ErrorCode {
	return k.code
}

// Classification returns the classification given to errors of this kind.
func (k *Kind) Classification() ErrorClassification {
	return k.classification
}

// DefaultMessage returns the message configured with WithMessage, if any.
func (k *Kind) DefaultMessage() string {
	return k.message
}

// Error returns the kind's name.
func (k *Kind) Error() string {
	return k.Name()
}

// String implements fmt.Stringer.
func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", k.name, k.code)
}

// Match reports whether err, or any error in its chain, was constructed by k.
func (k *Kind) Match(err error) bool {
	if err == nil || k == nil {
		return false
	}
	return stderrors.Is(err, k)
}

// New creates an error of this kind.
// An empty message falls back to the kind's default message, then its name.
//
// Example:
//
//	return ErrUserNotFound.New("no user with that email")
func (k *Kind) New(message string) PlatformError {
	return &platformError{
		kind:           k,
		code:           k.code,
		classification: k.classification,
		message:        k.messageOr(message),
	}
}

// Newf creates an error of this kind with a formatted message.
func (k *Kind) Newf(format string, args ...interface{}) PlatformError {
	return k.New(fmt.Sprintf(format, args...))
}

// Wrap creates an error of this kind that wraps err.
// If err already carries a classification, it is preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := repo.Load(ctx, id); err != nil {
//	    return ErrStorage.Wrap(err, "failed to load user")
//	}
func (k *Kind) Wrap(err error, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := k.classification
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		kind:           k,
		code:           k.code,
		classification: classification,
		message:        k.messageOr(message),
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message.
// Returns nil if err is nil.
func (k *Kind) Wrapf(err error, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return k.Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
// Returns nil if err is nil.
func (k *Kind) WrapWithContext(err error, message string, ctx map[string]interface{}) PlatformError {
	wrapped := k.Wrap(err, message)
	if wrapped == nil {
		return nil
	}
	return WithContextMap(wrapped, ctx)
}

func (k *Kind) messageOr(message string) string {
	switch {
	case message != "":
		return message
	case k.message != "":
		return k.message
	default:
		return k.name
	}
}
