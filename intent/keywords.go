package intent

import "strings"

// keywords maps each intent to English and Spanish trigger words.
var keywords = map[Intent][]string{
	AppointmentScheduling:    {"cita", "agendar", "horario", "disponible", "appointment", "schedule"},
	InsuranceCoverageInquiry: {"seguro", "cobertura", "cubre", "insurance", "coverage"},
	PrescriptionRefill:       {"receta", "medicamento", "reposición", "prescription", "refill"},
	BillingInquiry:           {"factura", "pago", "costo", "billing", "payment", "cost"},
	GeneralInquiry:           {"información", "pregunta", "duda", "information", "question"},
}

// Guess classifies text by keyword match, returning the intent with
// the most hits. Ties resolve in All() order; no hits at all yields
// GeneralInquiry with ok=false.
func Guess(text string) (Intent, bool) {
	lower := strings.ToLower(text)

	best := GeneralInquiry
	bestHits := 0
	for _, in := range All() {
		hits := 0
		for _, kw := range keywords[in] {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = in
			bestHits = hits
		}
	}
	return best, bestHits > 0
}
