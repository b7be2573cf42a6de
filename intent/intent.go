// Package intent defines the closed set of healthcare caller intents
// and a keyword heuristic for classifying text without a model.
package intent

import "fmt"

// Intent is a caller intent label.
type Intent string

// The closed set of intents the classifier may produce.
const (
	AppointmentScheduling    Intent = "appointment_scheduling"
	InsuranceCoverageInquiry Intent = "insurance_coverage_inquiry"
	PrescriptionRefill       Intent = "prescription_refill"
	BillingInquiry           Intent = "billing_inquiry"
	GeneralInquiry           Intent = "general_inquiry"
)

// All returns every valid intent, in classification-prompt order.
func All() []Intent {
	return []Intent{
		AppointmentScheduling,
		InsuranceCoverageInquiry,
		PrescriptionRefill,
		BillingInquiry,
		GeneralInquiry,
	}
}

// String returns the wire label.
func (i Intent) String() string { return string(i) }

// Valid reports whether i is a member of the closed set.
func (i Intent) Valid() bool {
	switch i {
	case AppointmentScheduling, InsuranceCoverageInquiry, PrescriptionRefill, BillingInquiry, GeneralInquiry:
		return true
	}
	return false
}

// Parse converts a wire label into an Intent, rejecting anything
// outside the closed set.
func Parse(s string) (Intent, error) {
	i := Intent(s)
	if !i.Valid() {
		return "", fmt.Errorf("intent: unknown label %q", s)
	}
	return i, nil
}
