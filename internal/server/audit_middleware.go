package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// auditLogMiddleware records every request and response as an audit
// entry and feeds it to the audit pipeline.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			ID:         uuid.New(),
			Timestamp:  time.Now().UTC(),
			Method:     r.Method,
			Path:       r.URL.Path,
			Topic:      r.Header.Get("X-Shopify-Topic"),
			ShopDomain: r.Header.Get("X-Shopify-Shop-Domain"),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.Actor = username
		}

		if r.Body != nil && !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				if form, err := parseFormBody(requestBody); err == nil {
					entry.OrderID = form.Get("orderId")
					entry.ActionType = form.Get("actionType")
					entry.Tag = form.Get("tag")
				}
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}
