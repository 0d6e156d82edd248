package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/rafaeljc/dbc/internal/logger"
)

const (
	defaultTraceLimit = 50
	maxTraceLimit     = 500
)

// handleListTraces returns the most recent persisted contract traces.
func (a *API) handleListTraces(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultTraceLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > maxTraceLimit {
			renderInvalidInput(w, r, "limit", "must be an integer between 1 and 500")
			return
		}
		limit = n
	}

	records, err := a.traces.Recent(r.Context(), limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list traces", slog.String("error", err.Error()))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{
			Code:    CodeInternal,
			Message: "Failed to read traces",
		})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, TracesResponse{Data: records})
}
