package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Complete sends the request and returns the response text.
func Complete(ctx context.Context, p Provider, req CompletionRequest) (string, error) {
	resp, err := p.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// CompleteStructured sends the request expecting JSON and unmarshals the
// response into result. It appends JSON formatting instructions to the
// system prompt as a belt-and-braces measure even for backends with a
// native JSON mode.
func CompleteStructured(ctx context.Context, p Provider, req CompletionRequest, result any) error {
	req.SystemPrompt += "\n\nIMPORTANT: Respond with ONLY the JSON object. " +
		"No markdown, no code blocks, no explanations. " +
		"Start with { and end with }."

	resp, err := p.CompleteStructured(ctx, req)
	if err != nil {
		return err
	}

	content := ExtractJSON(resp.Content)
	if err := json.Unmarshal([]byte(content), result); err != nil {
		return fmt.Errorf("llm: unmarshal structured response: %w", err)
	}
	return nil
}

// ExtractJSON pulls a JSON object from LLM output that may contain
// markdown fences or surrounding prose.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	// Strip markdown code fences
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s[3:], "\n"); idx >= 0 {
			s = s[3+idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Find first { and last }
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
