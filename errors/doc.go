// Package errors provides error kinds and structured error values.
//
// An error kind is defined once and then used both to construct errors and to
// recognise them later. Kinds are the error-constructor references that the
// annotate package attaches to functions and methods.
//
// # Defining Kinds
//
//	var (
//	    ErrUserNotFound = errors.Define("UserNotFound", errors.CodeNotFound)
//	    ErrStorage      = errors.Define("Storage", errors.CodeDatabase,
//	        errors.WithMessage("storage unavailable"))
//	)
//
// The classification (retryable or permanent) defaults from the code and can be
// overridden with WithKindClassification.
//
// # Creating and Wrapping Errors
//
//	err := ErrUserNotFound.Newf("user %s not found", id)
//
//	if err := db.Query(ctx, q); err != nil {
//	    return ErrStorage.Wrap(err, "failed to query users")
//	}
//
// Wrapping preserves the cause for errors.Unwrap and errors.As, and keeps the
// classification of a wrapped PlatformError.
//
// # Recognising Errors
//
// A kind matches every error it constructed, anywhere in the chain:
//
//	if ErrUserNotFound.Match(err) { ... }
//	if errors.Is(err, ErrUserNotFound) { ... }
//
// Error types and sentinel values defined elsewhere can be referenced with
// TypeOf and Sentinel; all three satisfy the Ref interface.
//
// # Context and Serialization
//
// WithContext and WithContextMap return new errors with debugging metadata
// attached. ToJSON and MarshalJSON render kind, code, message, classification
// and context, never the cause chain.
package errors
