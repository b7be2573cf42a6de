package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultSpeechModel = "gpt-4o-mini-tts"
	defaultVoice       = "nova"
)

// SpeechRequest holds parameters for a text-to-speech call.
type SpeechRequest struct {
	// Input is the text to synthesize.
	Input string `json:"input"`
	// Voice selects the synthesis voice. Empty means the default.
	Voice string `json:"voice,omitempty"`
	// Model overrides the default speech model.
	Model string `json:"model,omitempty"`
	// Format is the audio container format, e.g. "mp3" or "wav".
	Format string `json:"format,omitempty"`
	// Instructions steer delivery (tone, pacing). Optional.
	Instructions string `json:"instructions,omitempty"`
}

// Speech synthesizes audio from text via the OpenAI speech API and
// returns the raw audio bytes in the requested format.
func (p *Provider) Speech(ctx context.Context, req SpeechRequest) ([]byte, error) {
	if req.Model == "" {
		req.Model = defaultSpeechModel
	}
	if req.Voice == "" {
		req.Voice = defaultVoice
	}
	if req.Format == "" {
		req.Format = "mp3"
	}

	body, err := json.Marshal(map[string]any{
		"model":        req.Model,
		"voice":        req.Voice,
		"input":        req.Input,
		"format":       req.Format,
		"instructions": req.Instructions,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/v1/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai speech: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai speech: send request: %w", err)
	}
	defer httpResp.Body.Close()

	audio, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai speech: read response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai speech: unexpected status %d: %s", httpResp.StatusCode, truncate(string(audio), 400))
	}
	if len(audio) > 0 && audio[0] == '{' {
		return nil, fmt.Errorf("openai speech: got JSON instead of audio: %s", truncate(string(audio), 400))
	}
	return audio, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
