package config

import (
	"os"
	"time"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm/openai"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/server"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/transcription/whisper"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/validation"
)

// ServiceName is the canonical service name used for config resolution
// and logging tags.
const ServiceName = "voice-agent"

// Config is the full application configuration.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server   server.Config  `yaml:"server" mapstructure:"server"`
	Whisper  whisper.Config `yaml:"whisper" mapstructure:"whisper"`
	OpenAI   openai.Config  `yaml:"openai" mapstructure:"openai"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Upload   UploadConfig   `yaml:"upload" mapstructure:"upload"`
	Static   StaticConfig   `yaml:"static" mapstructure:"static"`
}

// PipelineConfig holds sampling and fallback settings for the
// classification and response-generation stages.
type PipelineConfig struct {
	// ClassifyTemperature is the sampling temperature for intent
	// classification. Low values favor deterministic labels.
	ClassifyTemperature float64 `yaml:"classify_temperature" mapstructure:"classify_temperature"`
	// RespondTemperature is the sampling temperature for response
	// generation, where output diversity is acceptable.
	RespondTemperature float64 `yaml:"respond_temperature" mapstructure:"respond_temperature"`
	// KeywordFallback enables the keyword heuristic when the model's
	// classification output fails validation. Off by default so schema
	// failures surface as errors.
	KeywordFallback bool `yaml:"keyword_fallback" mapstructure:"keyword_fallback"`
	// RetryAttempts is the number of attempts per pipeline stage for
	// retryable failures. 1 disables retry.
	RetryAttempts int `yaml:"retry_attempts" mapstructure:"retry_attempts"`
	// RetryBackoff is the initial delay between retry attempts.
	RetryBackoff time.Duration `yaml:"retry_backoff" mapstructure:"retry_backoff"`
}

// ApplyDefaults sets default sampling temperatures and retry settings.
func (c *PipelineConfig) ApplyDefaults() {
	if c.ClassifyTemperature == 0 {
		c.ClassifyTemperature = 0.3
	}
	if c.RespondTemperature == 0 {
		c.RespondTemperature = 0.7
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 1
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 500 * time.Millisecond
	}
}

// UploadConfig controls where uploaded audio is spooled before processing.
type UploadConfig struct {
	// Dir is the directory for transient upload files. Empty means the
	// system temp directory.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// StaticConfig controls static asset serving.
type StaticConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ApplyDefaults sets the default static asset directory.
func (c *StaticConfig) ApplyDefaults() {
	if c.Dir == "" {
		c.Dir = "static"
	}
}

// Load reads the service configuration from config.yml and the
// environment, applies defaults, and validates it. A missing OpenAI
// API key is a fatal configuration error: the service must not start
// without its text-generation credential.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(ServiceName, &cfg, opts...); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Whisper.ApplyDefaults()
	c.OpenAI.ApplyDefaults()
	c.Pipeline.ApplyDefaults()
	c.Static.ApplyDefaults()

	if c.Upload.Dir == "" {
		c.Upload.Dir = os.TempDir()
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Whisper.Validate(); err != nil {
		return err
	}
	if err := c.OpenAI.Validate(); err != nil {
		return err
	}
	v := validation.New().
		RangeFloat("pipeline.classify_temperature", c.Pipeline.ClassifyTemperature, 0, 1).
		RangeFloat("pipeline.respond_temperature", c.Pipeline.RespondTemperature, 0, 1).
		Range("pipeline.retry_attempts", c.Pipeline.RetryAttempts, 1, 10)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
