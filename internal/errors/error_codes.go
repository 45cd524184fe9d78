package errors

type ErrorCode string

const (
	// ErrInvalidConfiguration marks a widget misconfigured at construction
	// time. Raised synchronously, never retried.
	ErrInvalidConfiguration ErrorCode = "InvalidConfiguration"
	ErrNotFound             ErrorCode = "NotFound"
	ErrInternal             ErrorCode = "Internal"
)
