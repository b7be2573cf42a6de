package llm

import "context"

// Provider is the interface that LLM backends must implement.
type Provider interface {
	// Name returns the backend's name, e.g. "openai".
	Name() string

	// IsAvailable reports whether the backend is reachable.
	IsAvailable(ctx context.Context) bool

	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// CompleteStructured sends a completion request expecting a JSON
	// object response. Backends that support a native JSON output mode
	// enable it; others fall back to prompt instructions.
	CompleteStructured(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
