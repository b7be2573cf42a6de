package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Connection/Availability errors (retryable)
const (
	// ErrCodeServiceUnavailable indicates the service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeConnectionFailed indicates a failed connection to a service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Pipeline stage errors
const (
	// ErrCodeUploadFailed indicates the audio upload could not be received or stored.
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"
	// ErrCodeTranscriptionFailed indicates the speech-to-text stage failed,
	// including language detection over the transcript.
	ErrCodeTranscriptionFailed ErrorCode = "TRANSCRIPTION_FAILED"
	// ErrCodeClassificationFailed indicates the intent classification stage
	// failed or the model returned output outside the expected schema.
	ErrCodeClassificationFailed ErrorCode = "CLASSIFICATION_FAILED"
	// ErrCodeGenerationFailed indicates the response generation stage failed.
	ErrCodeGenerationFailed ErrorCode = "GENERATION_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeExternalService indicates an error from an external service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable:   true,
	ErrCodeConnectionFailed:     true,
	ErrCodeTimeout:              true,
	ErrCodeExternalService:      true,
	ErrCodeTranscriptionFailed:  true,
	ErrCodeClassificationFailed: true,
	ErrCodeGenerationFailed:     true,
	ErrCodeInternal:             false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
