package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "TOKEN_REVOKED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope the error handler writes for failures.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}
