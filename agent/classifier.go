package agent

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/jeevana-bhumireddy/healthcare-voice-agent/errors"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/intent"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/validation"
)

const classifySystemPrompt = "You are a healthcare intent classification expert."

// fallbackConfidence is assigned when the keyword heuristic stands in
// for a failed model classification.
const fallbackConfidence = 0.5

// ClassifierConfig holds tunables for the classification stage.
type ClassifierConfig struct {
	// Temperature is the sampling temperature. Low values favor
	// deterministic labels.
	Temperature float64
	// KeywordFallback falls back to keyword matching when the model's
	// output fails validation, instead of returning an error.
	KeywordFallback bool
}

// Classifier assigns one of the closed set of healthcare intents to a
// transcript, with a confidence score in [0, 1].
type Classifier struct {
	llm llm.Provider
	cfg ClassifierConfig
	log *logger.Logger
}

// NewClassifier creates a Classifier backed by the given LLM provider.
func NewClassifier(p llm.Provider, cfg ClassifierConfig, log *logger.Logger) *Classifier {
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	return &Classifier{
		llm: p,
		cfg: cfg,
		log: log.WithComponent("classifier"),
	}
}

// classifyPayload is the JSON object the model must return. The intent
// label is validated against the closed set; anything else is rejected.
// The confidence score is a pointer so a missing key fails validation
// instead of defaulting to zero.
type classifyPayload struct {
	Intent          string   `json:"intent" validate:"required,oneof=appointment_scheduling insurance_coverage_inquiry prescription_refill billing_inquiry general_inquiry"`
	ConfidenceScore *float64 `json:"confidence_score" validate:"required"`
}

// Classify determines the caller's intent from the transcript. Model
// output that is not valid JSON or names a label outside the closed
// set is an error, unless the keyword fallback is enabled.
func (c *Classifier) Classify(ctx context.Context, transcript string) (*Classification, error) {
	result, err := c.classifyLLM(ctx, transcript)
	if err == nil {
		c.log.Info("intent classified", logger.Fields(
			logger.FieldIntent, result.Intent.String(),
			"confidence_score", result.ConfidenceScore,
		))
		return result, nil
	}

	if c.cfg.KeywordFallback {
		guessed, _ := intent.Guess(transcript)
		c.log.Warn("model classification failed, using keyword fallback", logger.MergeWithError(
			logger.Fields(logger.FieldIntent, guessed.String()), err))
		return &Classification{Intent: guessed, ConfidenceScore: fallbackConfidence}, nil
	}

	c.log.Error("intent classification failed", logger.ErrorFields("classify", err))
	return nil, apperrors.ClassificationError("intent classification failed", err)
}

func (c *Classifier) classifyLLM(ctx context.Context, transcript string) (*Classification, error) {
	prompt := c.buildPrompt(transcript)

	var payload classifyPayload
	err := llm.CompleteStructured(ctx, c.llm, llm.CompletionRequest{
		SystemPrompt: classifySystemPrompt,
		Messages:     []llm.Message{{Role: "user", Content: prompt}},
		Temperature:  c.cfg.Temperature,
	}, &payload)
	if err != nil {
		return nil, err
	}

	if err := validation.Validate(&payload); err != nil {
		return nil, fmt.Errorf("invalid classification output: %w", err)
	}

	// The label passed oneof validation, so Parse cannot fail here.
	label, err := intent.Parse(payload.Intent)
	if err != nil {
		return nil, err
	}

	return &Classification{
		Intent:          label,
		ConfidenceScore: clamp01(*payload.ConfidenceScore),
	}, nil
}

func (c *Classifier) buildPrompt(transcript string) string {
	labels := make([]string, 0, len(intent.All()))
	for _, in := range intent.All() {
		labels = append(labels, in.String())
	}
	return fmt.Sprintf(`Analyze the following healthcare-related message and classify its intent.
Choose from: %s

Message: %s

Return a JSON with 'intent' and 'confidence_score' (0-1).`, strings.Join(labels, ", "), transcript)
}

// clamp01 pins a confidence score to [0, 1]. Models occasionally
// return values outside the requested range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
