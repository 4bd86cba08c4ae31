package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

func writeBodyError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	writeDetail(ctx, w, operation, http.StatusBadRequest, "Invalid request body", err)
}

// pathInt64 parses a numeric path segment. A non-numeric value is treated
// as a failed input validation rather than a missing resource.
func pathInt64(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

func writePathError(ctx context.Context, w http.ResponseWriter, operation, name string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{
		Detail: []string{name + " must be an integer"},
	})
	logHTTPOperationError(ctx, operation, http.StatusUnprocessableEntity, name+" must be an integer", nil)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func queryBool(r *http.Request, name string) bool {
	raw := strings.TrimSpace(strings.ToLower(r.URL.Query().Get(name)))
	return raw == "true" || raw == "1"
}

// pageParams reads the page/page_size pagination style.
func pageParams(r *http.Request) (page, pageSize int) {
	return queryInt(r, "page", 1), queryInt(r, "page_size", 10)
}

// flexiblePageParams additionally accepts the offset-style skip/limit
// parameters and converts them into page coordinates. skip/limit wins when
// either is present.
func flexiblePageParams(r *http.Request) (page, pageSize int) {
	q := r.URL.Query()
	if q.Get("skip") != "" || q.Get("limit") != "" {
		skip := queryInt(r, "skip", 0)
		if skip < 0 {
			skip = 0
		}
		limit := queryInt(r, "limit", 10)
		if limit < 1 {
			limit = 10
		}
		return skip/limit + 1, limit
	}
	return pageParams(r)
}

// readIP extracts the client address for rate limiting, preferring the
// first hop of X-Forwarded-For when a proxy fronts the service.
func readIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host := strings.TrimSpace(r.RemoteAddr)
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		return host[:idx]
	}
	return host
}
