// Package dataset generates labeled evaluation audio: spoken healthcare
// utterances per intent and language, synthesized via text-to-speech
// and written as 16 kHz mono PCM16 WAV files with a JSON metadata
// index.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/intent"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm/openai"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
)

const (
	defaultOutputDir  = "test_data"
	defaultSampleRate = 16000
	metadataFilename  = "dataset_metadata.json"
)

// Speaker synthesizes speech from text. *openai.Provider satisfies it.
type Speaker interface {
	Speech(ctx context.Context, req openai.SpeechRequest) ([]byte, error)
}

// Sample describes one generated audio file.
type Sample struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Language string `json:"language"`
	Intent   string `json:"intent"`
	Path     string `json:"path"`
}

// Metadata summarizes a generated dataset.
type Metadata struct {
	TotalSamples int      `json:"total_samples"`
	Languages    []string `json:"languages"`
	Intents      []string `json:"intents"`
}

// Dataset is the full metadata index written alongside the audio.
type Dataset struct {
	Metadata Metadata `json:"metadata"`
	Samples  []Sample `json:"samples"`
}

// GeneratorConfig holds dataset generation settings.
type GeneratorConfig struct {
	// OutputDir receives the WAV files and metadata JSON.
	OutputDir string
	// SamplesPerIntent caps how many utterances per intent and
	// language are synthesized.
	SamplesPerIntent int
	// SampleRate is the output WAV sample rate in Hz.
	SampleRate int
}

// Generator synthesizes the evaluation dataset.
type Generator struct {
	tts Speaker
	cfg GeneratorConfig
	log *logger.Logger
}

// NewGenerator creates a Generator backed by the given speech
// synthesizer.
func NewGenerator(tts Speaker, cfg GeneratorConfig, log *logger.Logger) *Generator {
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if cfg.SamplesPerIntent <= 0 {
		cfg.SamplesPerIntent = 5
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}
	return &Generator{
		tts: tts,
		cfg: cfg,
		log: log.WithComponent("dataset"),
	}
}

// Generate synthesizes audio for every scenario and writes the WAV
// files plus a metadata index to the output directory.
func (g *Generator) Generate(ctx context.Context) (*Dataset, error) {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	ds := &Dataset{
		Metadata: Metadata{Languages: Languages()},
	}
	for _, in := range intent.All() {
		ds.Metadata.Intents = append(ds.Metadata.Intents, in.String())
	}

	for _, in := range intent.All() {
		for _, lang := range Languages() {
			texts := scenarios[in][lang]
			if len(texts) > g.cfg.SamplesPerIntent {
				texts = texts[:g.cfg.SamplesPerIntent]
			}
			for i, text := range texts {
				filename := fmt.Sprintf("%s_%s_%d.wav", in, lang, i+1)
				path := filepath.Join(g.cfg.OutputDir, filename)

				if err := g.generateAudio(ctx, text, path); err != nil {
					return nil, fmt.Errorf("generate %s: %w", filename, err)
				}

				ds.Samples = append(ds.Samples, Sample{
					Filename: filename,
					Text:     text,
					Language: lang,
					Intent:   in.String(),
					Path:     path,
				})
				ds.Metadata.TotalSamples++

				g.log.Info("generated sample", logger.Fields(
					"filename", filename,
					logger.FieldIntent, in.String(),
					logger.FieldLanguage, lang,
				))
			}
		}
	}

	if err := g.writeMetadata(ds); err != nil {
		return nil, err
	}

	g.log.Info("dataset generation complete", logger.Fields(
		"total_samples", ds.Metadata.TotalSamples,
		"output_dir", g.cfg.OutputDir,
	))
	return ds, nil
}

func (g *Generator) generateAudio(ctx context.Context, text, outPath string) error {
	audio, err := g.tts.Speech(ctx, openai.SpeechRequest{Input: text, Format: "mp3"})
	if err != nil {
		return fmt.Errorf("synthesize speech: %w", err)
	}

	// Some backends return WAV regardless of the requested format.
	switch {
	case looksLikeWAV(audio):
		return os.WriteFile(outPath, audio, 0o644)
	case looksLikeMP3(audio):
		return mp3ToWAV(audio, g.cfg.SampleRate, outPath)
	default:
		return fmt.Errorf("unrecognized audio format from TTS")
	}
}

func (g *Generator) writeMetadata(ds *Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	path := filepath.Join(g.cfg.OutputDir, metadataFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}
