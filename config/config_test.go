package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfigFile(t, `
name: voice-agent
environment: production
logging:
  level: warn
  format: json
server:
  port: 9000
whisper:
  url: http://whisper:8387
  model: small
pipeline:
  keyword_fallback: true
`)

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Name != "voice-agent" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Whisper.URL != "http://whisper:8387" || cfg.Whisper.Model != "small" {
		t.Errorf("Whisper = %+v", cfg.Whisper)
	}
	if !cfg.Pipeline.KeywordFallback {
		t.Error("Pipeline.KeywordFallback = false, want true")
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey = %q, want value from OPENAI_API_KEY", cfg.OpenAI.APIKey)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Name != ServiceName {
		t.Errorf("Name = %q, want %q", cfg.Name, ServiceName)
	}
	if cfg.Pipeline.ClassifyTemperature != 0.3 {
		t.Errorf("ClassifyTemperature = %g, want 0.3", cfg.Pipeline.ClassifyTemperature)
	}
	if cfg.Pipeline.RespondTemperature != 0.7 {
		t.Errorf("RespondTemperature = %g, want 0.7", cfg.Pipeline.RespondTemperature)
	}
	if cfg.Pipeline.KeywordFallback {
		t.Error("KeywordFallback defaults on, want off")
	}
	if cfg.Static.Dir != "static" {
		t.Errorf("Static.Dir = %q, want %q", cfg.Static.Dir, "static")
	}
	if cfg.Upload.Dir == "" {
		t.Error("Upload.Dir should default to the system temp directory")
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
	if err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is unset")
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERVER_PORT", "7777")

	path := writeConfigFile(t, `
name: voice-agent
server:
  port: 9000
`)

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want env override 7777", cfg.Server.Port)
	}
}

func TestValidateTemperatureRange(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfigFile(t, `
name: voice-agent
pipeline:
  classify_temperature: 1.5
`)

	if _, err := Load(WithConfigFile(path)); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	variants := generateEnvKeyVariants("OPENAI_API_KEY")

	found := false
	for _, v := range variants {
		if v == "openai.api_key" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("OPENAI_API_KEY variants %v do not include openai.api_key", variants)
	}
}

// mockFS fakes file existence for resolver tests and records which
// .env files the loader asked for.
type mockFS struct {
	files     map[string]bool
	envLoaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }

func (m *mockFS) LoadEnv(path string) error {
	m.envLoaded = append(m.envLoaded, path)
	return nil
}

func TestResolverFindsServiceConfig(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/voice-agent/config.yml": true,
	}}
	r := &Resolver{FileSystem: fs}

	resolved := r.ResolveFiles("voice-agent", LoaderConfig{})
	if resolved.ConfigFile != "./cmd/voice-agent/config.yml" {
		t.Errorf("ConfigFile = %q", resolved.ConfigFile)
	}
}

func TestLoadConfigExplicitEnvFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{".env.staging": true}}

	var cfg struct{}
	err := LoadConfig("voice-agent", &cfg, WithFileSystem(fs), WithEnvFile(".env.staging"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(fs.envLoaded) != 1 || fs.envLoaded[0] != ".env.staging" {
		t.Errorf("env files loaded = %v, want [.env.staging]", fs.envLoaded)
	}
}

func TestResolverExplicitPathWins(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/voice-agent/config.yml": true,
		"/etc/voice-agent/config.yml":  true,
	}}
	r := &Resolver{FileSystem: fs}

	resolved := r.ResolveFiles("voice-agent", LoaderConfig{ConfigFile: "/etc/voice-agent/config.yml"})
	if resolved.ConfigFile != "/etc/voice-agent/config.yml" {
		t.Errorf("ConfigFile = %q, explicit path should win", resolved.ConfigFile)
	}
}
