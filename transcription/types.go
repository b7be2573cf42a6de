package transcription

// Request holds the parameters for one transcription call.
type Request struct {
	AudioPath string `json:"audio_path"`
	// Language hints the expected audio language ("en"); empty lets the
	// backend auto-detect.
	Language string `json:"language,omitempty"`
	Model    string `json:"model,omitempty"`
	// Format selects the output shape ("text", "json", "srt").
	Format string `json:"format,omitempty"`
}

// Response is the transcription result.
type Response struct {
	Text string `json:"text"`
	// Segments carries time-aligned pieces when the backend provides them.
	Segments []Segment `json:"segments,omitempty"`
	// Duration is the audio length in seconds.
	Duration float64 `json:"duration,omitempty"`
	Language string  `json:"language,omitempty"`
}

// Segment is a time-aligned span of the transcript.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}
