package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is, so
// Is(err, kind) reports whether err was constructed by kind.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling Unwrap on err, if any.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join wraps the given errors; see the standard library errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// GetKind returns the kind of the outermost PlatformError in err's chain.
// Returns nil if err is nil, is not a PlatformError, or has no kind.
func GetKind(err error) *Kind {
	var platformErr PlatformError
	if err == nil || !stderrors.As(err, &platformErr) {
		return nil
	}
	return platformErr.Kind()
}

// GetCode extracts the ErrorCode from the outermost PlatformError in err's chain.
// Returns CodeUnknown if the error is nil or not a PlatformError.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle not found
//	}
func GetCode(err error) ErrorCode {
	var platformErr PlatformError
	if err == nil || !stderrors.As(err, &platformErr) {
		return CodeUnknown
	}
	return platformErr.Code()
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a PlatformError,
// which prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	var platformErr PlatformError
	if err == nil || !stderrors.As(err, &platformErr) {
		return ClassificationPermanent
	}
	return platformErr.Classification()
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a PlatformError.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
