// Command voice-agent runs the healthcare voice agent HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/agent"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/api"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/config"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm/openai"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/server"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/server/endpoint"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/transcription/whisper"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/util"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(&cfg.Logging, cfg.Name)

	log.Info("starting service", logger.Fields(
		"service", cfg.Name,
		"version", version.Short(),
		"environment", cfg.Environment,
	))

	stt := whisper.NewProvider(cfg.Whisper)
	llmProvider := openai.NewProvider(cfg.OpenAI)

	log.Info("providers configured", logger.Fields(
		"whisper_url", cfg.Whisper.URL,
		"openai_model", cfg.OpenAI.Model,
		"openai_api_key", util.MaskSecret(cfg.OpenAI.APIKey, 6),
	))

	voiceAgent := agent.New(stt, llmProvider, agent.Config{
		Classifier: agent.ClassifierConfig{
			Temperature:     cfg.Pipeline.ClassifyTemperature,
			KeywordFallback: cfg.Pipeline.KeywordFallback,
		},
		Responder: agent.ResponderConfig{
			Temperature: cfg.Pipeline.RespondTemperature,
		},
		RetryAttempts: cfg.Pipeline.RetryAttempts,
		RetryBackoff:  cfg.Pipeline.RetryBackoff,
	}, log)

	srv := server.New(cfg.Server, log)
	srv.RegisterDefaultEndpoints(cfg.Name,
		endpoint.DependencyCheck{Name: whisper.ProviderName, Check: stt.IsAvailable},
		endpoint.DependencyCheck{Name: openai.ProviderName, Check: llmProvider.IsAvailable},
	)

	handler := api.NewHandler(voiceAgent, api.Config{
		UploadDir: cfg.Upload.Dir,
		StaticDir: cfg.Static.Dir,
	}, log)
	handler.Register(srv.GinEngine())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}
