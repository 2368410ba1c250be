package dto

import "time"

// ErrorResponse is the standard JSON error body returned by the API.
//
// Fields:
//   - Message: human readable summary (e.g., "symbol is required").
//   - ErrorDetails: optional underlying error text.
//   - Timestamp: when the error response was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"Failed to obtain stock values"`
	ErrorDetails string    `json:"error,omitempty" example:"connection refused"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can be passed around as an error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, copying err's text when err is non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
