package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// CountryLookup resolves an ISO country code for a client address.
type CountryLookup func(ip string) (string, error)

// Logger writes one access line per request and puts a request-scoped logger
// into the context for downstream code (zerolog.Ctx). Mount after RequestID
// and RealIP. countries may be nil.
func Logger(l zerolog.Logger, countries CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			fields := l.With().Str("request_id", RequestIDFromContext(r.Context()))
			if countries != nil {
				if cc, err := countries(r.RemoteAddr); err == nil && cc != "" {
					fields = fields.Str("country", cc)
				}
			}
			reqLogger := fields.Logger()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(reqLogger.WithContext(r.Context())))
			reqLogger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Dur("took", time.Since(start)).
				Msg("request")
		})
	}
}
