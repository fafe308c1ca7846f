package errors

import "errors"

// ErrorDetail is the error body returned to API consumers.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the envelope for all error responses.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse converts any error into the API error envelope. Internal
// messages are never leaked; only the hint and reportable details are exposed.
func NewErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    ErrInternal.Error(),
			Message: "An unexpected error occurred",
		},
	}

	var ie *InternalError
	if !errors.As(err, &ie) {
		return resp
	}

	if ie.Code != nil {
		resp.Error.Code = ie.Code.Error()
	}
	if ie.Hint != "" {
		resp.Error.Message = ie.Hint
	}
	resp.Error.Details = ie.ReportableDetails
	return resp
}
