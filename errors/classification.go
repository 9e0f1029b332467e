package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry
	// without the caller changing something first.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// Nothing in szio retries on its own; a missing file only goes away when the
// caller creates it, so every code starts out permanent.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeUnsupportedType: ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeNotFound:        ClassificationPermanent,
	CodeForbidden:       ClassificationPermanent,
	CodeClosed:          ClassificationPermanent,
	CodeIO:              ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
