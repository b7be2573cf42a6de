// Package transcription defines the provider interface and common types
// for speech-to-text backends.
//
// The service uses a single backend, the Whisper HTTP sidecar in
// transcription/whisper, but callers depend only on the Provider
// interface so tests can substitute stubs.
package transcription
