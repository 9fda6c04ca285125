package response

const (
	MessageInternalError   = "Internal server error"
	MessageNotFound        = "Not Found"
	MessageTooManyRequests = "Too many requests"

	// DefaultErrorMessage replaces fault details when they must not be exposed.
	DefaultErrorMessage = "An unexpected error occurred"

	// KeyRedactErrors is the gin context key that hides 500 fault details.
	KeyRedactErrors = "response.redact_errors"
)
