package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure for error responses in API endpoints.
//
// The wrapped error chain is intentionally excluded: causes may carry internal
// details that must not leak to external callers.
type ErrorResponse struct {
	// Kind is the name of the kind that constructed the error.
	// Omitted for errors without a kind.
	Kind string `json:"kind,omitempty"`

	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For standard errors, uses CodeUnknown, ClassificationPermanent, and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var platformErr *platformError
	if !As(err, &platformErr) {
		return &ErrorResponse{
			Code:           string(CodeUnknown),
			Message:        err.Error(),
			Classification: string(ClassificationPermanent),
		}
	}
	return platformErr.response()
}

// MarshalJSON implements json.Marshaler so PlatformError values can be passed
// straight to json.Marshal.
//
// Example:
//
//	jsonBytes, _ := json.Marshal(ErrUserNotFound.New("user not found"))
//	// {"kind":"UserNotFound","code":"NOT_FOUND","message":"user not found","classification":"PERMANENT"}
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.response())
	if err != nil {
		return nil, &platformError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}

func (e *platformError) response() *ErrorResponse {
	resp := &ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.Context(),
	}
	if e.kind != nil {
		resp.Kind = e.kind.name
	}
	return resp
}
