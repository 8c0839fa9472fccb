package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/factory-atlas/pkg/adapters"
	"github.com/de-tools/factory-atlas/pkg/models/api"
	"github.com/de-tools/factory-atlas/pkg/services/analytics"
	"github.com/de-tools/factory-atlas/pkg/services/period"
	"github.com/de-tools/factory-atlas/pkg/store/repository"
	"github.com/rs/zerolog"
)

const asOfParam = "as_of"

type Handler struct {
	service analytics.Service
	now     func() time.Time
}

func NewHandler(service analytics.Service) *Handler {
	return &Handler{
		service: service,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handler) GetEfficiency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	metrics, err := h.service.AnalyzeEfficiency(ctx, period.Resolve(asOf))
	if err != nil {
		h.writeError(w, r, err, "failed to analyze efficiency")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapEfficiencyMetricsDomainToApi(metrics))
}

func (h *Handler) GetBottlenecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	analysis, err := h.service.DetectBottlenecks(ctx, period.Resolve(asOf))
	if err != nil {
		h.writeError(w, r, err, "failed to detect bottlenecks")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapBottleneckAnalysisDomainToApi(analysis))
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	report, err := h.service.BuildReport(ctx, asOf)
	if err != nil {
		h.writeError(w, r, err, "failed to generate recommendations")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapRecommendationReportDomainToApi(report.Recommendations))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	report, err := h.service.BuildReport(ctx, asOf)
	if err != nil {
		h.writeError(w, r, err, "failed to build operations report")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapOperationsReportDomainToApi(report))
}

func (h *Handler) asOf(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	value := r.URL.Query().Get(asOfParam)
	asOf, err := period.ParseAsOf(value, h.now())
	if err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Str(asOfParam, value).Msg("invalid as_of parameter")
		h.writeJSON(w, r, http.StatusBadRequest, api.Error{
			Error: fmt.Sprintf("invalid %s %q: expected YYYY-MM-DD, YYYY-MM or RFC 3339", asOfParam, value),
		})
		return time.Time{}, false
	}
	return asOf, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)

	status := http.StatusInternalServerError
	var repoErr *repository.Error
	if errors.As(err, &repoErr) {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, r, status, api.Error{Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
