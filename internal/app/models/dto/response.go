package dto

// MessageResponse represents a standard confirmation response for API endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the standard error response body. Internal error
// detail never reaches the client through it.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
