package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/rafaeljc/dbc/internal/logger"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// internalViolationMessage replaces the message of non-precondition
// violations so implementation details are not exposed to clients.
const internalViolationMessage = "The service violated one of its own contracts"

var violationCodes = map[contract.Category]string{
	contract.CategoryPrecondition:  CodePrecondition,
	contract.CategoryPostcondition: CodePostcondition,
	contract.CategoryInvariant:     CodeInvariant,
	contract.CategoryAssertion:     CodeAssertion,
}

// RenderError writes err as an ErrorResponse.
// Violations map by category; anything else is a 500 ERR_INTERNAL.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	v, ok := contract.AsViolation(err)
	if !ok {
		log.Error("request failed", slog.String("error", err.Error()))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{
			Code:    CodeInternal,
			Message: "Internal server error",
		})
		return
	}

	if contract.IsClientError(v) {
		log.Warn("contract rejected request", slog.Any("violation", v))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{
			Code:    CodePrecondition,
			Message: v.Error(),
		})
		return
	}

	log.Error("contract violated while serving request", slog.Any("violation", v))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, ErrorResponse{
		Code:    violationCodes[v.Category],
		Message: internalViolationMessage,
	})
}

// renderInvalidInput writes a 400 ERR_INVALID_INPUT for a bad parameter.
func renderInvalidInput(w http.ResponseWriter, r *http.Request, field, issue string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{
		Code:    CodeInvalidInput,
		Message: "Invalid query parameter: " + field,
		Details: []ErrorDetail{{Field: field, Issue: issue}},
	})
}
