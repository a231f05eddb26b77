// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/progress-sync/internal/logger"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}
	return serve(h.withTraceID(next), req), captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		requestID     string
		wantReused    bool
		wantGenerated bool
	}{
		{name: "reuses request header", requestID: "my-custom-trace-id", wantReused: true},
		{name: "generates when missing", requestID: "", wantGenerated: true},
		{name: "replaces oversized id", requestID: strings.Repeat("x", maxTraceIDLength+1), wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			rr, req := executeWithTraceID(h, tt.requestID)

			require.NotNil(t, req)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantReused {
				assert.Equal(t, tt.requestID, got)
			}
			if tt.wantGenerated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: newBufferedLogger(&buf)}}

	_, req := executeWithTraceID(h, "trace-42")
	logger.FromRequest(req).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	seen := map[string]bool{}
	for range 20 {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
