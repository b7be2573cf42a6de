// Package validation checks configuration values and the structured
// output decoded from the language model.
//
// Struct tag validation backs the closed-set check on classification
// output:
//
//	type payload struct {
//	    Intent          string   `json:"intent" validate:"required,oneof=..."`
//	    ConfidenceScore *float64 `json:"confidence_score" validate:"required"`
//	}
//	err := validation.Validate(&payload)
//
// The fluent Validator collects field errors for configuration
// sections that need range checks beyond what tags express.
package validation
