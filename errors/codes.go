package errors

// ErrorCode represents a specific error condition.
// Error codes are strings so they read well in logs and serialize naturally.
type ErrorCode string

const (
	// Input errors.

	// CodeUnsupportedType indicates a value of a type the operation cannot accept.
	CodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"

	// CodeInvalidInput indicates the provided input is invalid or incomplete.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Resource errors.

	// CodeNotFound indicates a referenced file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeForbidden indicates the process lacks permission to read a file.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeClosed indicates an operation on a stream that was already closed.
	CodeClosed ErrorCode = "CLOSED"

	// I/O errors.

	// CodeIO indicates reading from storage failed for another reason.
	CodeIO ErrorCode = "IO_ERROR"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
