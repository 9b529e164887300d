package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/ga-insights/pkg/adapters"
	"github.com/de-tools/ga-insights/pkg/models/api"
	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/de-tools/ga-insights/pkg/services/insight"
	"github.com/rs/zerolog"
)

type Handler struct {
	insight insight.Controller
	policy  *insight.Config
}

func NewHandler(ctrl insight.Controller, policy *insight.Config) *Handler {
	return &Handler{
		insight: ctrl,
		policy:  policy,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, ok := h.daysFromQuery(w, r)
	if !ok {
		return
	}

	dashboard, err := h.insight.GetDashboard(ctx, days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, adapters.MapDashboardDomainToApi(dashboard))
}

func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, ok := h.daysFromQuery(w, r)
	if !ok {
		return
	}

	table, err := h.insight.GetTrend(ctx, days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, adapters.MapTableDomainToApi(table))
}

func (h *Handler) GetTopPages(w http.ResponseWriter, r *http.Request) {
	table, err := h.insight.GetTopPages(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, adapters.MapTableDomainToApi(table))
}

func (h *Handler) GetTopSources(w http.ResponseWriter, r *http.Request) {
	table, err := h.insight.GetTopSources(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, adapters.MapTableDomainToApi(table))
}

// daysFromQuery resolves the trend day-count selector: the configured default
// when the query param is absent, otherwise one of the allowed values. A 400
// response is written for anything else and ok=false returned.
func (h *Handler) daysFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return h.policy.DefaultDays, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || !h.policy.DaysAllowed(days) {
		h.writeStatus(w, r, http.StatusBadRequest, api.Error{
			Category: "invalid_parameter",
			Message:  "'days' must be one of the configured selector values",
		})
		return 0, false
	}

	return days, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var backendErr *domain.BackendError

	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		h.writeStatus(w, r, http.StatusBadRequest, api.Error{
			Category: "invalid_parameter",
			Message:  err.Error(),
		})
	case errors.As(err, &backendErr):
		status := http.StatusBadGateway
		if backendErr.Category == domain.BackendCategoryInvalidRequest {
			status = http.StatusBadRequest
		}
		h.writeStatus(w, r, status, api.Error{
			Category: backendErr.Category,
			Message:  backendErr.Message,
		})
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unexpected dashboard failure")
		h.writeStatus(w, r, http.StatusInternalServerError, api.Error{
			Category: "internal",
			Message:  "internal server error",
		})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func (h *Handler) writeStatus(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode error response")
	}
}
