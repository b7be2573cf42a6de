package intent

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Intent
		wantErr bool
	}{
		{"appointment_scheduling", AppointmentScheduling, false},
		{"insurance_coverage_inquiry", InsuranceCoverageInquiry, false},
		{"prescription_refill", PrescriptionRefill, false},
		{"billing_inquiry", BillingInquiry, false},
		{"general_inquiry", GeneralInquiry, false},
		{"emergency_triage", "", true},
		{"Appointment_Scheduling", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAllValid(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("All() returned %d intents, want 5", len(all))
	}
	for _, in := range all {
		if !in.Valid() {
			t.Errorf("%q reported invalid", in)
		}
	}
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   Intent
		wantOK bool
	}{
		{"english appointment", "I need to schedule a dental cleaning appointment", AppointmentScheduling, true},
		{"spanish appointment", "Necesito agendar una cita para la próxima semana", AppointmentScheduling, true},
		{"insurance", "Does my insurance cover dental implants?", InsuranceCoverageInquiry, true},
		{"refill spanish", "Necesito un reabastecimiento de mi receta", PrescriptionRefill, true},
		{"billing", "Can you explain the charges? The cost seems wrong on my billing statement", BillingInquiry, true},
		{"general", "I have a question about my first visit", GeneralInquiry, true},
		{"case insensitive", "CAN I BOOK AN APPOINTMENT?", AppointmentScheduling, true},
		{"no keywords", "the weather is nice today", GeneralInquiry, false},
		{"empty", "", GeneralInquiry, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Guess(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Guess(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
