package errors

// ErrorCode identifies the category of an error kind.
// Codes are strings so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeConflict indicates a resource state conflict that prevents the operation.
	CodeConflict ErrorCode = "CONFLICT"

	// Permission errors.

	// CodeUnauthorized indicates the request lacks valid authentication credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates the caller lacks permission for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Infrastructure errors.

	// CodeDatabase indicates a database operation failed.
	CodeDatabase ErrorCode = "DATABASE_ERROR"

	// CodeNetwork indicates a network operation failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeRateLimit indicates the rate limit has been exceeded.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeExecutionFailed indicates a general execution failure.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// Catalog errors.

	// CodeCatalogLoadFailed indicates a catalog file could not be read.
	CodeCatalogLoadFailed ErrorCode = "CATALOG_LOAD_FAILED"

	// CodeCatalogBuildFailed indicates catalog source failed to compile.
	CodeCatalogBuildFailed ErrorCode = "CATALOG_BUILD_FAILED"

	// CodeCatalogValidationFailed indicates a catalog does not satisfy the catalog schema.
	CodeCatalogValidationFailed ErrorCode = "CATALOG_VALIDATION_FAILED"

	// CodeCatalogDecodeFailed indicates a catalog could not be decoded into Go values.
	CodeCatalogDecodeFailed ErrorCode = "CATALOG_DECODE_FAILED"

	// CodeCatalogEncodeFailed indicates a catalog or manifest could not be rendered.
	CodeCatalogEncodeFailed ErrorCode = "CATALOG_ENCODE_FAILED"

	// CodeCatalogResolveFailed indicates a catalog references an undefined kind or code.
	CodeCatalogResolveFailed ErrorCode = "CATALOG_RESOLVE_FAILED"

	// System errors.

	// CodeInternal indicates an internal system error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeNotImplemented indicates the requested functionality is not implemented.
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// CodeUnavailable indicates the service is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// knownCodes is the set of codes ParseCode accepts.
var knownCodes = map[ErrorCode]struct{}{
	CodeNotFound:                {},
	CodeAlreadyExists:           {},
	CodeConflict:                {},
	CodeUnauthorized:            {},
	CodeForbidden:               {},
	CodeInvalidInput:            {},
	CodeInvalidConfig:           {},
	CodeDatabase:                {},
	CodeNetwork:                 {},
	CodeTimeout:                 {},
	CodeRateLimit:               {},
	CodeExecutionFailed:         {},
	CodeCatalogLoadFailed:       {},
	CodeCatalogBuildFailed:      {},
	CodeCatalogValidationFailed: {},
	CodeCatalogDecodeFailed:     {},
	CodeCatalogEncodeFailed:     {},
	CodeCatalogResolveFailed:    {},
	CodeInternal:                {},
	CodeNotImplemented:          {},
	CodeUnavailable:             {},
	CodeUnknown:                 {},
}

// ParseCode converts a string into a known ErrorCode.
// Returns false if the string does not name a predefined code.
func ParseCode(s string) (ErrorCode, bool) {
	code := ErrorCode(s)
	if _, ok := knownCodes[code]; !ok {
		return CodeUnknown, false
	}
	return code, true
}
