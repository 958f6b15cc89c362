// Package httpd is the HTTP boundary adapter: it translates net/http
// requests into the responder's abstract request value and writes the
// result back, mapping ErrAssetNotFound to 404.
package httpd

import (
	"errors"
	"net/http"
	"strings"

	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
	"go.trai.ch/webassets/internal/engine/responder"
)

// Handler serves asset requests below a URL prefix.
type Handler struct {
	responder *responder.Responder
	prefix    string
	log       ports.Logger
}

// NewHandler creates a Handler mounted at prefix (e.g. "/_assets").
func NewHandler(res *responder.Responder, prefix string, log ports.Logger) *Handler {
	prefix = "/" + strings.Trim(prefix, "/")
	return &Handler{responder: res, prefix: prefix, log: log}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path, ok := strings.CutPrefix(r.URL.Path, h.prefix)
	if !ok {
		http.NotFound(w, r)
		return
	}

	req := domain.Request{
		Path:    path,
		Query:   make(map[string]string),
		Headers: make(map[string]string),
	}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			req.Query[key] = values[0]
		}
	}
	for key, values := range r.Header {
		if len(values) > 0 {
			req.Headers[key] = values[0]
		}
	}

	resp, err := h.responder.Respond(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error(err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
