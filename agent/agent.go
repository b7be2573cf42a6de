// Package agent orchestrates the voice pipeline: transcription,
// language identification, intent classification, and response
// generation.
//
// A pipeline run is strictly linear. Each stage consumes the previous
// stage's output, and the first stage error aborts the run and is
// returned to the caller.
package agent

import (
	"context"
	"time"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/intent"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/resilience"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/transcription"
)

// Config holds the stage tunables for an Agent.
type Config struct {
	Classifier ClassifierConfig
	Responder  ResponderConfig

	// RetryAttempts is the number of attempts per stage for retryable
	// failures. Values below 2 disable retry.
	RetryAttempts int
	// RetryBackoff is the initial delay between attempts.
	RetryBackoff time.Duration
}

// Agent runs the full audio-to-response pipeline.
type Agent struct {
	transcriber *Transcriber
	classifier  *Classifier
	responder   *Responder
	retry       resilience.RetryConfig
	log         *logger.Logger
}

// New wires an Agent from its stage dependencies.
func New(stt transcription.Provider, llmProvider llm.Provider, cfg Config, log *logger.Logger) *Agent {
	agentLog := log.WithComponent("agent")
	return &Agent{
		transcriber: NewTranscriber(stt, log),
		classifier:  NewClassifier(llmProvider, cfg.Classifier, log),
		responder:   NewResponder(llmProvider, cfg.Responder, log),
		retry: resilience.RetryConfig{
			MaxAttempts:    cfg.RetryAttempts,
			InitialBackoff: cfg.RetryBackoff,
			RetryIf:        resilience.RetryableOnly,
			OnRetry: func(attempt int, err error, backoff time.Duration) {
				agentLog.Warn("retrying pipeline stage", logger.Fields(
					"attempt", attempt,
					"backoff_ms", backoff.Milliseconds(),
					"error", err.Error(),
				))
			},
		},
		log: agentLog,
	}
}

// runStage executes fn, retrying retryable failures when retry is enabled.
func runStage[T any](ctx context.Context, a *Agent, fn func() (T, error)) (T, error) {
	if a.retry.MaxAttempts < 2 {
		return fn()
	}
	return resilience.Retry(ctx, a.retry, fn)
}

// Process runs the pipeline end to end on the audio file at audioPath.
// Stage errors are returned as-is so the boundary can map them to the
// right status; nothing is swallowed.
func (a *Agent) Process(ctx context.Context, audioPath string) (*ProcessingResult, error) {
	start := time.Now()

	tr, err := runStage(ctx, a, func() (*TranscriptionResult, error) {
		return a.transcriber.Transcribe(ctx, audioPath)
	})
	if err != nil {
		return nil, err
	}

	cl, err := runStage(ctx, a, func() (*Classification, error) {
		return a.classifier.Classify(ctx, tr.Transcript)
	})
	if err != nil {
		return nil, err
	}

	reply, err := runStage(ctx, a, func() (string, error) {
		return a.responder.Respond(ctx, tr.Transcript, cl.Intent, tr.Language)
	})
	if err != nil {
		return nil, err
	}

	result := &ProcessingResult{
		Transcript:      tr.Transcript,
		Language:        tr.Language,
		Intent:          cl.Intent,
		Response:        reply,
		ConfidenceScore: cl.ConfidenceScore,
	}

	a.log.Info("pipeline complete", logger.Fields(
		logger.FieldAudioPath, audioPath,
		logger.FieldIntent, result.Intent.String(),
		logger.FieldLanguage, result.Language,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return result, nil
}

// Classify exposes the classification stage for callers that already
// have text, such as the dataset evaluation tool.
func (a *Agent) Classify(ctx context.Context, transcript string) (*Classification, error) {
	return a.classifier.Classify(ctx, transcript)
}

// Respond exposes the response-generation stage for callers that
// already have a transcript and intent.
func (a *Agent) Respond(ctx context.Context, transcript string, in intent.Intent, lang string) (string, error) {
	return a.responder.Respond(ctx, transcript, in, lang)
}
