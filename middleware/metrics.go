package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shubhamnexus/samparkmain-dashboard/observability"
)

// routeTemplate labels a request by its mux route so that ids in the path do
// not explode metric cardinality.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return ""
}

// MetricsMiddleware records request counts and latencies.
func MetricsMiddleware(c *observability.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrw := wrap(w)
			next.ServeHTTP(wrw, r)
			c.ObserveRequest(r.Method, routeTemplate(r), wrw.status, time.Since(start).Seconds())
		})
	}
}

// TracingMiddleware opens a server span per request named after the route.
func TracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeTemplate(r)
		if route == "" {
			route = r.URL.Path
		}
		ctx, span := observability.Tracer().Start(r.Context(), r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", route),
			),
		)
		defer span.End()

		wrw := wrap(w)
		next.ServeHTTP(wrw, r.WithContext(ctx))
		span.SetAttributes(attribute.Int("http.response.status_code", wrw.status))
	})
}
