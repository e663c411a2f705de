package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/drilldown"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"),
	)
}

type testServer struct {
	router  *mux.Router
	metrics *observability.Collector
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	metrics, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	if opts.Catalog == nil {
		opts.Catalog = dataset.MustDefaultCatalog()
	}
	if opts.Sessions == nil {
		opts.Sessions = drilldown.NewSessionStore(time.Minute, time.Minute)
	}
	opts.Metrics = metrics
	opts.Logger = zaptest.NewLogger(t)

	r := mux.NewRouter()
	New(opts).Register(r.PathPrefix("/api/v1").Subrouter())
	return &testServer{router: r, metrics: metrics}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})

	rr := s.do(t, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = s.do(t, http.MethodGet, "/api/v1/health/detailed", "")
	require.Equal(t, http.StatusOK, rr.Code)
	health := decode[HealthResponse](t, rr)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 4, health.Partners)
	assert.Equal(t, 6, health.Periods)
	assert.Equal(t, 0, health.Sessions)
}

func TestGetReference(t *testing.T) {
	s := newTestServer(t, Options{})

	rr := s.do(t, http.MethodGet, "/api/v1/reference", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, publicHourly, rr.Header().Get("Cache-Control"))

	ref := decode[models.ReferenceResponse](t, rr)
	require.NotEmpty(t, ref.States)
	assert.Equal(t, "all", ref.States[0].ID)
	assert.Equal(t, "all", ref.Partners[0].ID)
	for _, st := range ref.States {
		assert.NotEqual(t, "default", st.ID)
	}
}

func TestGetStateDistricts(t *testing.T) {
	s := newTestServer(t, Options{})

	ap := decode[models.DistrictListResponse](t, s.do(t, http.MethodGet, "/api/v1/reference/states/andhra-pradesh/districts", ""))
	assert.Equal(t, "Andhra Pradesh", ap.Label)
	assert.False(t, ap.Borrowed)
	require.Len(t, ap.Districts, 10)
	assert.Equal(t, "AP01", ap.Districts[0].Code)

	delhi := decode[models.DistrictListResponse](t, s.do(t, http.MethodGet, "/api/v1/reference/states/delhi/districts", ""))
	assert.True(t, delhi.Borrowed)
	assert.Equal(t, "DE01", delhi.Districts[0].Code)
}

func TestGetFiltered(t *testing.T) {
	s := newTestServer(t, Options{})

	rr := s.do(t, http.MethodGet, "/api/v1/dashboard/filtered?partner=edutech&state=andhra-pradesh&period=Q4&seed=9", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "9", rr.Header().Get(seedHeader))
	assert.Equal(t, noStore, rr.Header().Get("Cache-Control"))

	got := decode[models.FilteredResponse](t, rr)
	assert.Equal(t, uint64(9), got.Seed)
	assert.Empty(t, got.Fallbacks)
	assert.Equal(t, models.BaseTotals{Budget: 9360000, Schools: 16875, Students: 936000, Teachers: 46800, Kits: 2925}, got.Totals)
}

func TestPanelsReportFallbacks(t *testing.T) {
	s := newTestServer(t, Options{})

	got := decode[models.FilteredResponse](t, s.do(t, http.MethodGet, "/api/v1/dashboard/filtered?partner=ghost&period=Q7&state=kerala", ""))
	assert.Equal(t, "all", got.Selection.Partner)
	assert.Equal(t, "all", got.Selection.Period)
	assert.Equal(t, "kerala", got.Selection.State)
	assert.ElementsMatch(t, []models.Fallback{
		{Field: "partner", Requested: "ghost", Used: "all"},
		{Field: "period", Requested: "Q7", Used: "all"},
	}, got.Fallbacks)
}

func TestPanelsRejectBadSeed(t *testing.T) {
	s := newTestServer(t, Options{})

	for _, panel := range []string{"filtered", "budget", "performance", "districts", "blocks", "summary", "goals", "overview"} {
		rr := s.do(t, http.MethodGet, "/api/v1/dashboard/"+panel+"?seed=-4", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, panel)
		errResp := decode[ErrorResponse](t, rr)
		assert.Equal(t, http.StatusBadRequest, errResp.Code)
	}
}

func TestPanelsAreDeterministicPerSeed(t *testing.T) {
	s := newTestServer(t, Options{})

	for _, panel := range []string{"budget", "performance", "districts", "blocks", "summary", "goals", "overview"} {
		target := "/api/v1/dashboard/" + panel + "?partner=brightfuture&state=tamil-nadu&period=Q2&seed=1234"
		a := s.do(t, http.MethodGet, target, "")
		b := s.do(t, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, a.Code, panel)
		assert.JSONEq(t, a.Body.String(), b.Body.String(), panel)
	}
}

func TestConfiguredSeedIsUsed(t *testing.T) {
	s := newTestServer(t, Options{Seed: 77, HasSeed: true})

	rr := s.do(t, http.MethodGet, "/api/v1/dashboard/budget", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "77", rr.Header().Get(seedHeader))

	rr = s.do(t, http.MethodGet, "/api/v1/dashboard/budget?seed=5", "")
	assert.Equal(t, "5", rr.Header().Get(seedHeader))
}

func TestGetBudget(t *testing.T) {
	s := newTestServer(t, Options{})

	got := decode[models.BudgetResponse](t, s.do(t, http.MethodGet, "/api/v1/dashboard/budget?state=andhra-pradesh&period=Q4&seed=1", ""))
	assert.Equal(t, int64(20800000), got.Breakdown.Total)
	assert.InDelta(t, got.Breakdown.Total, got.Breakdown.Utilized+got.Breakdown.Remaining, 1)
	assert.Len(t, got.Breakdown.Categories, 5)
	assert.Len(t, got.Trend, 3)
}

func TestGetGoalsCountsGeneratedBlocks(t *testing.T) {
	s := newTestServer(t, Options{})

	rr := s.do(t, http.MethodGet, "/api/v1/dashboard/goals?state=andhra-pradesh&seed=3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	goals := decode[models.GoalsResponse](t, rr)
	assert.Len(t, goals.Blocks, 10)
	assert.Len(t, goals.Districts, 10)
	assert.Equal(t, 10.0, testutil.ToFloat64(s.metrics.GeneratedEntities.WithLabelValues("block")))
}

func TestGetBlockCoverage(t *testing.T) {
	s := newTestServer(t, Options{})

	got := decode[models.CoverageResponse](t, s.do(t, http.MethodGet, "/api/v1/dashboard/blocks?state=andhra-pradesh&seed=3", ""))
	assert.Equal(t, "AP03", got.District)
	assert.Len(t, got.Rows, 10)
	for _, row := range got.Rows {
		assert.LessOrEqual(t, row.CoveredSchools, row.TotalSchools)
	}
}

func TestGetOverviewAndSummary(t *testing.T) {
	s := newTestServer(t, Options{})

	overview := decode[models.Overview](t, s.do(t, http.MethodGet, "/api/v1/dashboard/overview?state=andhra-pradesh&seed=2", ""))
	assert.Equal(t, uint64(2), overview.Seed)
	assert.Equal(t, int64(42500), overview.TeacherTraining.Trained)

	summary := decode[models.ProgramSummary](t, s.do(t, http.MethodGet, "/api/v1/dashboard/summary?state=andhra-pradesh&seed=2", ""))
	assert.Equal(t, uint64(2), summary.Seed)
	assert.Equal(t, int64(22500), summary.Schools.Urban)
}
