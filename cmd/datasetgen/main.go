// Command datasetgen synthesizes the labeled evaluation audio dataset:
// spoken healthcare utterances for every intent in English and Spanish,
// written as 16 kHz mono WAV files plus a JSON metadata index.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/config"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/dataset"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm/openai"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
)

func main() {
	outputDir := flag.String("output", "test_data", "directory for generated audio and metadata")
	samples := flag.Int("samples", 5, "samples per intent and language")
	flag.Parse()

	if err := run(*outputDir, *samples); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(outputDir string, samples int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(&cfg.Logging, "datasetgen")

	tts := openai.NewProvider(cfg.OpenAI)
	gen := dataset.NewGenerator(tts, dataset.GeneratorConfig{
		OutputDir:        outputDir,
		SamplesPerIntent: samples,
	}, log)

	ds, err := gen.Generate(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Dataset generated: %d samples in %s\n", ds.Metadata.TotalSamples, outputDir)
	return nil
}
