package dto

// ErrorType distinguishes "fix your request" failures from "something broke
// on our side" failures at the API boundary.
type ErrorType string

const (
	// BusinessRuleError marks validation or domain-rule violations caused by
	// the caller's input; messages are actionable.
	BusinessRuleError ErrorType = "BUSINESS_RULE"
	// InternalError marks unexpected failures; callers only get a trace id
	// for server-side lookup, never the underlying detail.
	InternalError ErrorType = "INTERNAL"
)

// BaseResponse is embedded in every use-case response. It always exposes
// success, optional error messages, an optional trace id, and the error
// classification.
type BaseResponse struct {
	Success       bool      `json:"isSuccess"`
	ErrorMessages []string  `json:"errorMessages,omitempty"`
	TraceID       string    `json:"traceId,omitempty"`
	ErrorType     ErrorType `json:"errorType,omitempty"`
}

// Succeed marks the response successful.
func (r *BaseResponse) Succeed() {
	r.Success = true
	r.ErrorMessages = nil
	r.ErrorType = ""
}

// AddBusinessRuleErrors records caller-attributable failures with their
// specific violated-rule messages.
func (r *BaseResponse) AddBusinessRuleErrors(messages ...string) {
	r.Success = false
	r.ErrorType = BusinessRuleError
	r.ErrorMessages = append(r.ErrorMessages, messages...)
}

// MarkInternalFailure records an unexpected failure. Only a generic message
// and the trace id reach the caller.
func (r *BaseResponse) MarkInternalFailure(traceID string) {
	r.Success = false
	r.ErrorType = InternalError
	r.TraceID = traceID
	r.ErrorMessages = []string{"an unexpected error occurred, check the data or try again later"}
}

// IsSuccess reports whether the operation succeeded.
func (r *BaseResponse) IsSuccess() bool { return r.Success }
