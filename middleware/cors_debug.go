package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CORSDebugMiddleware logs the CORS-relevant parts of each request and
// response. It does not answer preflights itself; rs/cors does that.
func CORSDebugMiddleware(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug("cors request",
				zap.String("origin", r.Header.Get("Origin")),
				zap.String("method", r.Method),
				zap.String("request_method", r.Header.Get("Access-Control-Request-Method")),
				zap.String("request_headers", r.Header.Get("Access-Control-Request-Headers")),
			)

			next.ServeHTTP(w, r)

			log.Debug("cors response",
				zap.String("allow_origin", w.Header().Get("Access-Control-Allow-Origin")),
				zap.String("vary", w.Header().Get("Vary")),
			)
		})
	}
}
