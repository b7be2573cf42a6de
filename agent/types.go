package agent

import "github.com/jeevana-bhumireddy/healthcare-voice-agent/intent"

// TranscriptionResult is the output of the transcription stage:
// recognized text plus the display name of the detected language.
type TranscriptionResult struct {
	Transcript string `json:"transcript"`
	Language   string `json:"language"`
}

// Classification is the output of the intent-classification stage.
type Classification struct {
	Intent          intent.Intent `json:"intent"`
	ConfidenceScore float64       `json:"confidence_score"`
}

// ProcessingResult is the terminal record returned to the caller after
// a full pipeline run.
type ProcessingResult struct {
	Transcript      string        `json:"transcript"`
	Language        string        `json:"language"`
	Intent          intent.Intent `json:"intent"`
	Response        string        `json:"response"`
	ConfidenceScore float64       `json:"confidence_score"`
}
