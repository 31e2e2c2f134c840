package http

import (
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/site"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// sessionMiddleware opens a site.Session for the request and logs the
// outcome once the handler returns.
func (api *PublicAPI) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := logging.ContextWithFields(r.Context(), map[string]any{"request_id": id})
		session := api.service.NewSession(ctx, id)
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r.WithContext(site.WithSession(ctx, session)))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		entry := logging.WithRequestID(api.logger, id)
		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(started).Milliseconds(),
		}
		if status >= http.StatusInternalServerError {
			entry.Error("http.request.completed", args...)
			return
		}
		entry.Info("http.request.completed", args...)
	})
}

// session returns the request session, opening one when the handler runs
// outside sessionMiddleware.
func (api *PublicAPI) session(r *http.Request) *site.Session {
	if session, ok := site.FromContext(r.Context()); ok {
		return session
	}
	return api.service.NewSession(r.Context(), "")
}
