package agent

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/jeevana-bhumireddy/healthcare-voice-agent/errors"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/intent"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
)

const respondSystemPrompt = "You are a professional healthcare assistant. " +
	"Return only the response text without any prefixes or additional formatting."

// ResponderConfig holds tunables for the response-generation stage.
type ResponderConfig struct {
	// Temperature is the sampling temperature. Higher values are
	// acceptable here since output diversity is fine for replies.
	Temperature float64
}

// Responder generates a reply to the caller in their own language.
type Responder struct {
	llm llm.Provider
	cfg ResponderConfig
	log *logger.Logger
}

// NewResponder creates a Responder backed by the given LLM provider.
func NewResponder(p llm.Provider, cfg ResponderConfig, log *logger.Logger) *Responder {
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	return &Responder{
		llm: p,
		cfg: cfg,
		log: log.WithComponent("responder"),
	}
}

// Respond generates a professional, concise, privacy-preserving reply
// written in the given language. Models sometimes prefix replies with
// "Response:" despite instructions, so that prefix is stripped.
func (r *Responder) Respond(ctx context.Context, transcript string, in intent.Intent, lang string) (string, error) {
	prompt := fmt.Sprintf(`Generate a professional healthcare response in %s for the following:

Original message: %s
Intent: %s

The response should be helpful, concise, and maintain patient privacy.
Return ONLY the response text without any prefixes or additional formatting.`, lang, transcript, in)

	text, err := llm.Complete(ctx, r.llm, llm.CompletionRequest{
		SystemPrompt: respondSystemPrompt,
		Messages:     []llm.Message{{Role: "user", Content: prompt}},
		Temperature:  r.cfg.Temperature,
	})
	if err != nil {
		r.log.Error("response generation failed", logger.ErrorFields("respond", err))
		return "", apperrors.GenerationError(err)
	}

	text = strings.TrimSpace(text)
	if len(text) >= 9 && strings.EqualFold(text[:9], "response:") {
		text = strings.TrimSpace(text[9:])
	}

	r.log.Info("response generated", logger.Fields(
		logger.FieldIntent, in.String(),
		logger.FieldLanguage, lang,
	))
	return text, nil
}
