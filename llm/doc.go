// Package llm defines the provider interface and common types for
// chat-completion backends, plus helpers for extracting structured JSON
// from model output.
//
// The service talks to OpenAI through llm/openai, but the pipeline
// stages depend only on the Provider interface so tests can substitute
// canned responses.
package llm
