package http

import (
	"errors"
	"net/http"

	"postalform/internal/adapters/http/response"
	httpErrors "postalform/internal/platform/http"
	"postalform/internal/platform/logger"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler adapts a HandlerFunc to http.HandlerFunc. A returned
// *httpErrors.Error with a 4xx status is rendered with its public message.
// Everything else is logged and hidden behind a generic 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		contextLogger := logger.FromContext(r.Context())

		var httpErr *httpErrors.Error
		if status := httpErrors.StatusCode(err); status < http.StatusInternalServerError && errors.As(err, &httpErr) {
			if cause := httpErr.Unwrap(); cause != nil {
				contextLogger.Debug("Request failed",
					logger.Int("status", status),
					logger.Error(cause))
			}
			response.RespondError(w, status, errors.New(httpErr.PublicMessage()))
			return
		}

		contextLogger.Error("Unexpected server error",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
