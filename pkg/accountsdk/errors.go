package accountsdk

import "fmt"

// Canonical client-visible messages. Unknown-email and wrong-password both
// map to MessageInvalidCredentials, and every bearer-token failure maps to
// MessageUnauthorized; the conflation is deliberate so callers cannot probe
// which part was wrong.
const (
	MessageInvalidBody        = "Invalid request body"
	MessageInvalidCredentials = "Invalid credentials"
	MessageUnauthorized       = "Unauthorized"
	MessageEmailTaken         = "Email already registered"
	MessageUserNotFound       = "User not found"
	MessageServerError        = "Internal server error"
)

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error body shape for every non-2xx response:
// {message} plus, for validation failures only, an itemized errors array.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// APIError is the client-side representation of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("accountsdk: %d %s", e.StatusCode, e.Message)
}
