// Package errors provides unified error handling for the voice agent
// service. It implements structured error types with error codes, HTTP
// status mapping, and retryable detection following RFC 7807.
//
// Pipeline stages wrap their failures in stage-specific codes
// (TRANSCRIPTION_FAILED, CLASSIFICATION_FAILED, GENERATION_FAILED,
// UPLOAD_FAILED) so the request boundary can log and map them while
// keeping the external error body uniform.
package errors
