package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeNotFound         = "NOT_FOUND"
	textCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	textCodeRenderFailed     = "RENDER_FAILED"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeText(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// writeError renders err as a go-errors response. Errors without an HTTP
// code get one from their category.
func (api *PublicAPI) writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	status := mapped.Code
	if status == 0 {
		status = statusForCategory(mapped.Category)
	}
	if id := w.Header().Get(RequestIDHeader); id != "" {
		mapped = mapped.WithRequestID(id)
	}
	if status >= http.StatusInternalServerError {
		api.logger.Error("http.request.failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, mapped.ToErrorResponse(false, nil))
}

func statusForCategory(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return http.StatusBadRequest
	case goerrors.CategoryMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func notFound(kind, key string) error {
	return goerrors.New(fmt.Sprintf("%s %q not found", kind, key), goerrors.CategoryNotFound).
		WithTextCode(textCodeNotFound).
		WithCode(http.StatusNotFound)
}

func methodNotAllowed(method, path string) error {
	return goerrors.New(fmt.Sprintf("%s not allowed on %s", method, path), goerrors.CategoryMethodNotAllowed).
		WithTextCode(textCodeMethodNotAllowed).
		WithCode(http.StatusMethodNotAllowed)
}

func renderFailed(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "render markdown").
		WithTextCode(textCodeRenderFailed).
		WithCode(http.StatusInternalServerError)
}

// pathParam returns the decoded route parameter. chi routes on the decoded
// path unless the request carried an escaped slash, so only RawPath
// parameters need unescaping.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
