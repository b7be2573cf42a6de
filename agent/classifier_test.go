package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/intent"
)

func newTestClassifier(model *stubLLM, cfg ClassifierConfig) *Classifier {
	return NewClassifier(model, cfg, testLogger())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantIntent intent.Intent
		wantScore  float64
	}{
		{
			"appointment",
			`{"intent": "appointment_scheduling", "confidence_score": 0.92}`,
			intent.AppointmentScheduling, 0.92,
		},
		{
			"fenced output",
			"```json\n{\"intent\": \"billing_inquiry\", \"confidence_score\": 0.8}\n```",
			intent.BillingInquiry, 0.8,
		},
		{
			"confidence above range is clamped",
			`{"intent": "prescription_refill", "confidence_score": 1.7}`,
			intent.PrescriptionRefill, 1.0,
		},
		{
			"confidence below range is clamped",
			`{"intent": "general_inquiry", "confidence_score": -0.2}`,
			intent.GeneralInquiry, 0.0,
		},
		{
			"explicit zero confidence is accepted",
			`{"intent": "general_inquiry", "confidence_score": 0}`,
			intent.GeneralInquiry, 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(&stubLLM{structuredContent: tt.content}, ClassifierConfig{})
			got, err := c.Classify(context.Background(), "some transcript")
			if err != nil {
				t.Fatalf("Classify() error: %v", err)
			}
			if got.Intent != tt.wantIntent || got.ConfidenceScore != tt.wantScore {
				t.Errorf("Classify() = %+v, want {%s %g}", got, tt.wantIntent, tt.wantScore)
			}
		})
	}
}

func TestClassifyRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown label", `{"intent": "emergency_triage", "confidence_score": 0.9}`},
		{"wrong case", `{"intent": "Appointment_Scheduling", "confidence_score": 0.9}`},
		{"missing intent", `{"confidence_score": 0.9}`},
		{"missing confidence_score", `{"intent": "appointment_scheduling"}`},
		{"null confidence_score", `{"intent": "appointment_scheduling", "confidence_score": null}`},
		{"not json", "the caller wants an appointment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(&stubLLM{structuredContent: tt.content}, ClassifierConfig{})
			if _, err := c.Classify(context.Background(), "some transcript"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClassifyKeywordFallback(t *testing.T) {
	model := &stubLLM{structuredErr: errors.New("backend down")}
	c := newTestClassifier(model, ClassifierConfig{KeywordFallback: true})

	got, err := c.Classify(context.Background(), "Necesito agendar una cita para la próxima semana")
	if err != nil {
		t.Fatalf("Classify() with fallback error: %v", err)
	}
	if got.Intent != intent.AppointmentScheduling {
		t.Errorf("Intent = %q, want %q", got.Intent, intent.AppointmentScheduling)
	}
	if got.ConfidenceScore != fallbackConfidence {
		t.Errorf("ConfidenceScore = %g, want %g", got.ConfidenceScore, fallbackConfidence)
	}
}

func TestClassifyFallbackDisabled(t *testing.T) {
	model := &stubLLM{structuredErr: errors.New("backend down")}
	c := newTestClassifier(model, ClassifierConfig{})

	if _, err := c.Classify(context.Background(), "I need an appointment"); err == nil {
		t.Fatal("expected error when fallback is disabled")
	}
}

func TestClassifierDefaultTemperature(t *testing.T) {
	c := newTestClassifier(&stubLLM{}, ClassifierConfig{})
	if c.cfg.Temperature != 0.3 {
		t.Errorf("Temperature = %g, want 0.3", c.cfg.Temperature)
	}
}
