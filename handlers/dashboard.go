package handlers

import (
	"context"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shubhamnexus/samparkmain-dashboard/analytics"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/observability"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

// panelRequest is what every dashboard endpoint starts from.
type panelRequest struct {
	selection models.FilterSelection
	fallbacks []models.Fallback
	seed      uint64
	jitter    utils.Jitter
}

// panel resolves the filter and seed of a request. It writes the error
// response itself and returns false when the request is unusable.
func (h *Handler) panel(w http.ResponseWriter, r *http.Request) (panelRequest, bool) {
	seed, err := h.requestSeed(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return panelRequest{}, false
	}
	sel, fallbacks := h.catalog.Resolve(selectionFrom(r))
	return panelRequest{
		selection: sel,
		fallbacks: fallbacks,
		seed:      seed,
		jitter:    utils.NewSeededJitter(seed),
	}, true
}

func startSpan(ctx context.Context, name string, p panelRequest) trace.Span {
	_, span := observability.Tracer().Start(ctx, name, trace.WithAttributes(
		attribute.String("dashboard.partner", p.selection.Partner),
		attribute.String("dashboard.state", p.selection.State),
		attribute.String("dashboard.period", p.selection.Period),
		attribute.String("dashboard.seed", strconv.FormatUint(p.seed, 10)),
	))
	return span
}

func (h *Handler) GetFiltered(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, noStore, models.FilteredResponse{
		Selection: p.selection,
		Fallbacks: p.fallbacks,
		Seed:      p.seed,
		Totals:    h.catalog.FilteredData(p.selection),
	})
}

func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	span := startSpan(r.Context(), "analytics.DeriveBudget", p)
	defer span.End()

	period, _ := h.catalog.Period(p.selection.Period)
	writeJSON(w, http.StatusOK, noStore, models.BudgetResponse{
		Selection: p.selection,
		Fallbacks: p.fallbacks,
		Seed:      p.seed,
		Breakdown: analytics.DeriveBudget(h.catalog.FilteredData(p.selection), period, p.jitter),
		Trend:     analytics.BudgetTrend(h.catalog, p.selection, p.jitter),
	})
}

func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	span := startSpan(r.Context(), "analytics.PerformanceTrend", p)
	defer span.End()

	writeJSON(w, http.StatusOK, noStore, models.PerformanceResponse{
		Selection: p.selection,
		Fallbacks: p.fallbacks,
		Seed:      p.seed,
		Trend:     analytics.PerformanceTrend(h.catalog, p.selection, p.jitter),
	})
}

func (h *Handler) GetDistrictCoverage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	span := startSpan(r.Context(), "analytics.DistrictCoverage", p)
	defer span.End()

	writeJSON(w, http.StatusOK, noStore, models.CoverageResponse{
		Selection: p.selection,
		Fallbacks: p.fallbacks,
		Seed:      p.seed,
		Rows:      analytics.DistrictCoverage(h.catalog, p.selection, p.jitter),
	})
}

func (h *Handler) GetBlockCoverage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	span := startSpan(r.Context(), "analytics.BlockCoverage", p)
	defer span.End()

	district, rows := analytics.BlockCoverage(h.catalog, p.selection, p.jitter)
	h.metrics.RecordGenerated(len(rows), 0)
	writeJSON(w, http.StatusOK, noStore, models.CoverageResponse{
		Selection: p.selection,
		Fallbacks: p.fallbacks,
		Seed:      p.seed,
		District:  district,
		Rows:      rows,
	})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	span := startSpan(r.Context(), "analytics.DeriveSummary", p)
	defer span.End()

	summary := analytics.DeriveSummary(h.catalog, p.selection, p.jitter)
	summary.Fallbacks = p.fallbacks
	summary.Seed = p.seed
	writeJSON(w, http.StatusOK, noStore, summary)
}

func (h *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	span := startSpan(r.Context(), "analytics.DeriveGoals", p)
	defer span.End()

	goals := analytics.DeriveGoals(h.catalog, p.selection, p.jitter)
	goals.Fallbacks = p.fallbacks
	goals.Seed = p.seed
	h.metrics.RecordGenerated(len(goals.Blocks), 0)
	writeJSON(w, http.StatusOK, noStore, goals)
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	p, ok := h.panel(w, r)
	if !ok {
		return
	}
	span := startSpan(r.Context(), "analytics.DeriveOverview", p)
	defer span.End()

	overview := analytics.DeriveOverview(h.catalog, p.selection, p.jitter)
	overview.Fallbacks = p.fallbacks
	overview.Seed = p.seed
	writeJSON(w, http.StatusOK, noStore, overview)
}
