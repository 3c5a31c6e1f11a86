package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"postalform/internal/platform/logger"
)

// RequestLogger puts a request-scoped logger carrying the chi request ID into
// the context and logs one line per request once the handler returns.
// Requests to quietPaths, such as probes and scrapes, are logged at debug
// level unless they fail.
func RequestLogger(baseLogger logger.Logger, quietPaths ...string) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			contextLogger := baseLogger.With(logger.String("request_id", middleware.GetReqID(r.Context())))
			next.ServeHTTP(ww, r.WithContext(logger.WithLogger(r.Context(), contextLogger)))

			status := ww.Status()
			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("remote_addr", r.RemoteAddr),
				logger.Int("status", status),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("duration", time.Since(start)),
			}

			_, isQuiet := quiet[r.URL.Path]
			switch {
			case status >= http.StatusInternalServerError:
				contextLogger.Error("HTTP Request", fields...)
			case isQuiet:
				contextLogger.Debug("HTTP Request", fields...)
			default:
				contextLogger.Info("HTTP Request", fields...)
			}
		})
	}
}
