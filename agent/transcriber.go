package agent

import (
	"context"

	apperrors "github.com/jeevana-bhumireddy/healthcare-voice-agent/errors"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/language"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/transcription"
)

// Transcriber converts audio into text and identifies the language of
// the resulting transcript. Language identification runs over the
// transcript text, not the audio.
type Transcriber struct {
	stt transcription.Provider
	log *logger.Logger
}

// NewTranscriber creates a Transcriber backed by the given speech-to-text
// provider.
func NewTranscriber(stt transcription.Provider, log *logger.Logger) *Transcriber {
	return &Transcriber{
		stt: stt,
		log: log.WithComponent("transcriber"),
	}
}

// Transcribe converts the audio file at audioPath to text and attaches
// the display name of the detected language. An empty or
// unrecognizable transcript makes language detection fail, which is
// surfaced as a transcription error.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (*TranscriptionResult, error) {
	resp, err := t.stt.Transcribe(ctx, transcription.Request{AudioPath: audioPath})
	if err != nil {
		t.log.Error("speech-to-text failed", logger.ErrorFields("transcribe", err))
		return nil, apperrors.TranscriptionError(err)
	}

	code, err := language.Detect(resp.Text)
	if err != nil {
		t.log.Error("language detection failed", logger.ErrorFields("detect_language", err))
		return nil, apperrors.TranscriptionError(err)
	}

	result := &TranscriptionResult{
		Transcript: resp.Text,
		Language:   language.DisplayName(code),
	}

	t.log.Info("transcription complete", logger.Fields(
		logger.FieldAudioPath, audioPath,
		logger.FieldLanguage, result.Language,
	))
	return result, nil
}
