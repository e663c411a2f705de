package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shubhamnexus/samparkmain-dashboard/observability"
)

func TestRecoveryMiddleware(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := mux.NewRouter()
	r.Use(RecoveryMiddleware(zap.New(core)))
	r.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Internal server error", "code": 500}`, rr.Body.String())
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	assert.Equal(t, "/boom", logs.All()[0].ContextMap()["path"])
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(zap.New(core)))
	r.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/teapot", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/teapot", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, len("short and stout"), fields["bytes"])
}

func TestWrapReusesWriter(t *testing.T) {
	rw := wrap(httptest.NewRecorder())
	assert.Same(t, rw, wrap(rw))

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusConflict)
	assert.Equal(t, http.StatusCreated, rw.status)
}

func TestMetricsMiddlewareLabelsByRouteTemplate(t *testing.T) {
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector))
	r.Use(TracingMiddleware)
	r.HandleFunc("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil))
	}

	got := testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "/sessions/{id}", "404"))
	assert.Equal(t, 3.0, got)
}

func TestCORSDebugMiddlewarePassesThrough(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := mux.NewRouter()
	r.Use(CORSDebugMiddleware(zap.New(core)))
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "http://localhost:3000", logs.FilterMessage("cors response").All()[0].ContextMap()["allow_origin"])
}
