package logger

import (
	"context"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"json stdout", Config{Level: "debug", Format: "json", Output: "stdout"}},
		{"json stderr", Config{Level: "info", Format: "json", Output: "stderr"}},
		{"console", Config{Level: "info", Format: "console", Output: "stdout", NoColor: true}},
		{"invalid level falls back to info", Config{Level: "nope", Format: "json"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New(&tc.cfg, "voice-agent")
			if l == nil {
				t.Fatal("New() = nil")
			}
			if l.service != "voice-agent" {
				t.Errorf("service = %q", l.service)
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("voice-agent")
	if l == nil {
		t.Fatal("NewDefault() = nil")
	}
	if l.service != "voice-agent" {
		t.Errorf("service = %q", l.service)
	}
}

func TestWithComponentPreservesService(t *testing.T) {
	l := NewDefault("voice-agent").WithComponent("classifier")
	if l == nil {
		t.Fatal("WithComponent() = nil")
	}
	if l.service != "voice-agent" {
		t.Errorf("service = %q, component tagging must not change it", l.service)
	}
}

func TestWithFields(t *testing.T) {
	l := NewDefault("voice-agent").WithFields(map[string]interface{}{FieldLanguage: "es"})
	if l == nil {
		t.Fatal("WithFields() = nil")
	}
}

func TestRequestIDContextRoundTrip(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-42")
	if got := RequestIDFromContext(ctx); got != "req-42" {
		t.Errorf("RequestIDFromContext() = %q, want req-42", got)
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
}

func TestWithContext(t *testing.T) {
	base := NewDefault("voice-agent")

	ctx := ContextWithRequestID(context.Background(), "req-42")
	if l := base.WithContext(ctx); l == base {
		t.Error("WithContext with a request ID should derive a new logger")
	}

	// Without a request ID the logger is returned unchanged.
	if l := base.WithContext(context.Background()); l != base {
		t.Error("WithContext without a request ID should return the receiver")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("Output = %q, want stdout", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default on")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	cases := []struct {
		name string
		in   []interface{}
		want map[string]interface{}
	}{
		{
			"pairs",
			[]interface{}{FieldIntent, "billing_inquiry", FieldLanguage, "en"},
			map[string]interface{}{FieldIntent: "billing_inquiry", FieldLanguage: "en"},
		},
		{
			"trailing key dropped",
			[]interface{}{FieldIntent, "billing_inquiry", "dangling"},
			map[string]interface{}{FieldIntent: "billing_inquiry"},
		},
		{
			"non-string key skipped",
			[]interface{}{7, "seven", FieldLanguage, "es"},
			map[string]interface{}{FieldLanguage: "es"},
		},
		{"empty", nil, map[string]interface{}{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Fields(tc.in...)
			if len(got) != len(tc.want) {
				t.Fatalf("Fields() = %v, want %v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Errorf("Fields()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestErrorFields(t *testing.T) {
	fields := ErrorFields("transcribe", errors.New("sidecar unreachable"))

	if fields[FieldOperation] != "transcribe" {
		t.Errorf("operation = %v", fields[FieldOperation])
	}
	if fields[FieldError] != "sidecar unreachable" {
		t.Errorf("error = %v", fields[FieldError])
	}
}

func TestMergeWithError(t *testing.T) {
	fields := MergeWithError(map[string]interface{}{FieldIntent: "general_inquiry"}, errors.New("bad output"))
	if fields[FieldError] != "bad output" {
		t.Errorf("error = %v", fields[FieldError])
	}
	if fields[FieldIntent] != "general_inquiry" {
		t.Error("existing fields must be preserved")
	}

	fromNil := MergeWithError(nil, errors.New("bad output"))
	if fromNil[FieldError] != "bad output" {
		t.Errorf("error from nil map = %v", fromNil[FieldError])
	}
}
