// Package resilience provides retry with exponential backoff for the
// pipeline's calls to external services (speech-to-text, LLM).
//
// Retry decisions are driven by the error taxonomy in the errors package:
// RetryableOnly retries only errors marked Retryable, so client mistakes
// such as a bad upload fail immediately while transient upstream failures
// are attempted again.
package resilience
