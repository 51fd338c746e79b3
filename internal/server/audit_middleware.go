package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path, r.Method),
		}
		entry.TrackingNumber, entry.ShippingID = pathIdentifiers(r.URL.Path)

		skipRequestBody := strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data")
		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func pathIdentifiers(path string) (trackingNumber, shippingID string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return "", ""
	}
	switch parts[0] {
	case "track":
		return parts[1], ""
	case "shippings":
		return "", parts[1]
	}
	return "", ""
}

func handlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/track/"):
		if method == http.MethodPost && strings.HasSuffix(path, "/verify") {
			return "handleVerifyPayment"
		}
		return "handleGetShipping"
	case strings.HasPrefix(path, "/shippings"):
		switch {
		case method == http.MethodPost && strings.HasSuffix(path, "/history"):
			return "handleAddHistoryEntry"
		case method == http.MethodPost:
			return "handleCreateShipping"
		case method == http.MethodPut:
			return "handleUpdateShipping"
		case method == http.MethodDelete:
			return "handleDeleteShipping"
		case method == http.MethodGet:
			return "handleListShippings"
		}
	}
	return "unknown"
}
