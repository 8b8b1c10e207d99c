package errors

import stderrors "errors"

// WithContext adds a single context field to an error.
// Returns a new PlatformError; existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := ErrBuild.New("build failed")
//	err = errors.WithContext(err, "project", "my-app")
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return asPlatform(err).with(func(e *platformError) {
		if e.context == nil {
			e.context = make(map[string]interface{}, 1)
		}
		e.context[key] = value
	})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return asPlatform(err).with(func(e *platformError) {
		if len(ctx) == 0 {
			return
		}
		if e.context == nil {
			e.context = make(map[string]interface{}, len(ctx))
		}
		for k, v := range ctx {
			e.context[k] = v
		}
	})
}

// WithClassification overrides the classification of an error.
// Useful when a normally permanent kind should be retried in a specific case.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}
	return asPlatform(err).with(func(e *platformError) {
		e.classification = classification
	})
}

// asPlatform returns the outermost platform error in err's chain, or converts
// err into one with CodeUnknown.
func asPlatform(err error) *platformError {
	var pe *platformError
	if stderrors.As(err, &pe) {
		return pe
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
