package handlers

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gometeo/citydash/internal/model"
)

// MsgEndpointNotFound is returned for every unmatched route.
const MsgEndpointNotFound = "Endpoint not found"

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, errorMsg string) {
	sendJSON(w, status, model.ErrorResponse{Error: errorMsg})
}

// NotFound answers 404 with the standard error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	sendError(w, http.StatusNotFound, MsgEndpointNotFound)
}

// Static serves files from fsys for GET and HEAD. Anything that is not an
// existing file falls through to NotFound.
func Static(fsys fs.FS) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			NotFound(w, r)
			return
		}

		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

type requestIDKey struct{}

// WithRequestID stores id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
