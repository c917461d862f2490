package dto

// ErrorResponse is the JSON error envelope returned by every non-2xx
// endpoint response.
//
// The "error" key carries the human-readable message the original API surface
// exposes; Detail optionally carries the underlying cause (e.g. the upstream
// provider's description) and is omitted when empty.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"error" example:"No historical data found"`
	Detail  string `json:"detail,omitempty" example:"yahoo: status 502"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error whose text becomes Detail.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Detail = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel through
// gin's error list and the ErrorHandler middleware.
func (e ErrorResponse) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}
