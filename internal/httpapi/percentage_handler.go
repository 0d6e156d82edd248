package httpapi

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/rafaeljc/dbc/internal/percent"
)

// handlePercentage converts ?fraction= to a percentage string.
// Parsing failures are input errors; the range rules are enforced by the
// contracts inside percent.Convert.
func (a *API) handlePercentage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("fraction")
	if raw == "" {
		renderInvalidInput(w, r, "fraction", "is required")
		return
	}

	fraction, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		renderInvalidInput(w, r, "fraction", "must be a finite decimal number")
		return
	}

	pct, err := percent.Convert(a.checker, fraction)
	if err != nil {
		RenderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, PercentageResponse{
		Fraction:   fraction,
		Percentage: pct,
	})
}
