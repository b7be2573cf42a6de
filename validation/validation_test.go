package validation

import (
	"strings"
	"testing"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/errors"
)

type intentOutput struct {
	Intent          string   `json:"intent" validate:"required,oneof=appointment_scheduling general_inquiry"`
	ConfidenceScore *float64 `json:"confidence_score" validate:"required"`
}

func floatPtr(v float64) *float64 { return &v }

func TestValidateStruct(t *testing.T) {
	cases := []struct {
		name      string
		in        intentOutput
		wantErr   bool
		wantField string
	}{
		{
			"valid",
			intentOutput{Intent: "appointment_scheduling", ConfidenceScore: floatPtr(0.9)},
			false, "",
		},
		{
			"missing intent",
			intentOutput{ConfidenceScore: floatPtr(0.9)},
			true, "intent",
		},
		{
			"intent outside set",
			intentOutput{Intent: "emergency_triage", ConfidenceScore: floatPtr(0.9)},
			true, "intent",
		},
		{
			"missing confidence",
			intentOutput{Intent: "general_inquiry"},
			true, "confidence_score",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tc.wantField) {
				t.Errorf("error %q does not name field %q", err.Error(), tc.wantField)
			}
		})
	}
}

func TestValidateReturnsAppErrorWithFieldDetails(t *testing.T) {
	err := Validate(&intentOutput{})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("error %T is not an AppError", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrCodeInvalidInput)
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Fatalf("details fields = %v", appErr.Details["fields"])
	}
}

func TestValidatorFluent(t *testing.T) {
	v := New().
		Required("url", "http://localhost:8387").
		RangeFloat("classify_temperature", 0.3, 0, 1).
		Range("retry_attempts", 2, 1, 10).
		OneOf("language", "es", []string{"en", "es"})

	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidatorCollectsAllFailures(t *testing.T) {
	v := New().
		Required("api_key", "  ").
		RangeFloat("respond_temperature", 1.5, 0, 1).
		OneOf("language", "ja", []string{"en", "es"})

	if !v.HasErrors() {
		t.Fatal("expected failures")
	}
	if len(v.Errors()) != 3 {
		t.Fatalf("Errors() = %v, want 3 entries", v.Errors())
	}

	err := v.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"api_key", "respond_temperature", "language"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not name field %q", err.Error(), field)
		}
	}
}

func TestValidatorOneOfSkipsEmpty(t *testing.T) {
	v := New().OneOf("language", "", []string{"en", "es"})
	if v.HasErrors() {
		t.Error("empty value should not fail OneOf")
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ConfidenceScore", "confidence_score"},
		{"Intent", "intent"},
		{"URL", "u_r_l"},
		{"already_snake", "already_snake"},
	}
	for _, tc := range cases {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
