package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: network timeouts, rate limits, transient database issues.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: validation errors, permission denials, resource not found.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// ParseClassification converts a string into an ErrorClassification.
// Returns false for anything other than RETRYABLE or PERMANENT.
func ParseClassification(s string) (ErrorClassification, bool) {
	switch c := ErrorClassification(s); c {
	case ClassificationRetryable, ClassificationPermanent:
		return c, true
	default:
		return ClassificationPermanent, false
	}
}

// retryableCodes lists the codes that default to ClassificationRetryable.
// Every other code, known or not, defaults to ClassificationPermanent.
var retryableCodes = map[ErrorCode]struct{}{
	CodeTimeout:     {},
	CodeNetwork:     {},
	CodeRateLimit:   {},
	CodeUnavailable: {},
	CodeDatabase:    {}, // transient DB issues
}

// DefaultClassification returns the classification a kind gets for code
// when none is given explicitly.
func DefaultClassification(code ErrorCode) ErrorClassification {
	if _, ok := retryableCodes[code]; ok {
		return ClassificationRetryable
	}
	return ClassificationPermanent
}
