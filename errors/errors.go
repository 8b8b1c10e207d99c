package errors

// PlatformError extends the standard error interface with structured information
// for consistent error handling.
//
// Values are produced by a Kind (Kind.New, Kind.Wrap, ...) and are immutable.
// PlatformError is compatible with errors.Is, errors.As and errors.Unwrap;
// errors.Is(err, kind) reports whether err was built from kind.
type PlatformError interface {
	error

	// Kind returns the kind that constructed this error.
	// Returns nil for errors converted from plain Go errors.
	Kind() *Kind

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
