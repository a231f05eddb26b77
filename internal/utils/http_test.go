// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/progress-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Fingerprint(t *testing.T) {
	w := httptest.NewRecorder()
	ts := int64(1700000000000)
	fp := models.SyncFingerprint{DataID: "d-1", DataVersion: 2, DataTimestamp: &ts}

	n, err := WriteJSON(w, fp, http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"dataId":"d-1","dataVersion":2,"dataTimestamp":1700000000000}`, w.Body.String())
}

func TestWriteJSON_NeverModifiedOmitsTimestamp(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.SyncFingerprint{DataID: "d-1", DataVersion: 1}, http.StatusOK)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dataId":"d-1","dataVersion":1}`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}
