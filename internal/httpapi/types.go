package httpapi

import "github.com/rafaeljc/dbc/internal/tracestore"

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidInput  = "ERR_INVALID_INPUT"
	CodePrecondition  = "ERR_PRECONDITION"
	CodePostcondition = "ERR_POSTCONDITION"
	CodeInvariant     = "ERR_INVARIANT"
	CodeAssertion     = "ERR_ASSERTION"
	CodeInternal      = "ERR_INTERNAL"
)

// ErrorResponse represents a standard structured API error.
type ErrorResponse struct {
	// Code is a machine-readable error code (e.g., "ERR_INVALID_INPUT").
	Code string `json:"code"`

	// Message is a human-readable description of the error.
	Message string `json:"message"`

	// Details provides optional granular validation errors.
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail provides context about a specific parameter failure.
type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// PercentageResponse is returned by GET /v1/percentage.
type PercentageResponse struct {
	Fraction   float64 `json:"fraction"`
	Percentage string  `json:"percentage"`
}

// TracesResponse is returned by GET /v1/traces.
type TracesResponse struct {
	Data []tracestore.Record `json:"data"`
}
