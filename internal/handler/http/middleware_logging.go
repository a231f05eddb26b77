// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/progress-sync/internal/logger"
)

// withLogging writes one access log entry per request. Snapshot transfers
// are logged with their body sizes in both directions.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int64("request_size", r.ContentLength).
			Int("status", lw.status).
			Int64("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
