package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/drilldown"
	"github.com/shubhamnexus/samparkmain-dashboard/observability"
)

// Options are the dependencies of the HTTP handlers. Catalog and Sessions are
// required.
type Options struct {
	Catalog  *dataset.Catalog
	Sessions *drilldown.SessionStore
	Metrics  *observability.Collector
	Logger   *zap.Logger

	// Seed pins every response to one random stream when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

type Handler struct {
	catalog  *dataset.Catalog
	sessions *drilldown.SessionStore
	metrics  *observability.Collector
	log      *zap.Logger
	seed     uint64
	hasSeed  bool
	started  time.Time
}

func New(opts Options) *Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		catalog:  opts.Catalog,
		sessions: opts.Sessions,
		metrics:  opts.Metrics,
		log:      log,
		seed:     opts.Seed,
		hasSeed:  opts.HasSeed,
		started:  time.Now(),
	}
	h.sessions.OnEvicted(func(id string) {
		h.metrics.SetSessions(h.sessions.Count())
		h.log.Debug("drilldown session evicted", zap.String("session", id))
	})
	return h
}

// Register mounts every route on api, which is expected to be the /api/v1
// subrouter.
func (h *Handler) Register(api *mux.Router) {
	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	api.HandleFunc("/health/detailed", h.HealthDetailed).Methods(http.MethodGet)

	// Reference tables
	api.HandleFunc("/reference", h.GetReference).Methods(http.MethodGet)
	api.HandleFunc("/reference/states/{state}/districts", h.GetStateDistricts).Methods(http.MethodGet)

	// Dashboard panels
	dash := api.PathPrefix("/dashboard").Subrouter()
	dash.HandleFunc("/filtered", h.GetFiltered).Methods(http.MethodGet)
	dash.HandleFunc("/budget", h.GetBudget).Methods(http.MethodGet)
	dash.HandleFunc("/performance", h.GetPerformance).Methods(http.MethodGet)
	dash.HandleFunc("/districts", h.GetDistrictCoverage).Methods(http.MethodGet)
	dash.HandleFunc("/blocks", h.GetBlockCoverage).Methods(http.MethodGet)
	dash.HandleFunc("/summary", h.GetSummary).Methods(http.MethodGet)
	dash.HandleFunc("/goals", h.GetGoals).Methods(http.MethodGet)
	dash.HandleFunc("/overview", h.GetOverview).Methods(http.MethodGet)

	// Drill-down
	drill := api.PathPrefix("/drilldown").Subrouter()
	drill.HandleFunc("/districts/{code}", h.ExpandDistrict).Methods(http.MethodGet)
	drill.HandleFunc("/sessions", h.CreateSession).Methods(http.MethodPost)
	drill.HandleFunc("/sessions/{id}", h.GetSession).Methods(http.MethodGet)
	drill.HandleFunc("/sessions/{id}", h.DeleteSession).Methods(http.MethodDelete)
	drill.HandleFunc("/sessions/{id}/district", h.SelectDistrict).Methods(http.MethodPost)
	drill.HandleFunc("/sessions/{id}/block", h.SelectBlock).Methods(http.MethodPost)
	drill.HandleFunc("/sessions/{id}/back", h.Back).Methods(http.MethodPost)
}

type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Partners int    `json:"partners"`
	Periods  int    `json:"periods"`
	States   int    `json:"states"`
	Sessions int    `json:"sessions"`
}

func (h *Handler) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, noStore, HealthResponse{
		Status:   "ok",
		Uptime:   time.Since(h.started).Round(time.Second).String(),
		Partners: h.catalog.PartnerCount(),
		Periods:  h.catalog.PeriodCount(),
		States:   h.catalog.StateCount(),
		Sessions: h.sessions.Count(),
	})
}
