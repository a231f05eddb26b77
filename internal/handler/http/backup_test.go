// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/progress-sync/internal/codec"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/internal/store"
	"github.com/MKhiriev/progress-sync/models"
)

func ts(v int64) *int64 { return &v }

type uploadPart struct {
	name, fileName, body string
}

func multipartBody(t *testing.T, parts ...uploadPart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		header := textproto.MIMEHeader{}
		disposition := `form-data; name="` + p.name + `"`
		if p.fileName != "" {
			disposition += `; filename="` + p.fileName + `"`
		}
		header.Set("Content-Disposition", disposition)
		w, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(w, p.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func infoPart(t *testing.T, fp models.SyncFingerprint) uploadPart {
	t.Helper()
	raw, err := json.Marshal(fp)
	require.NoError(t, err)
	return uploadPart{name: models.PartInfo, body: string(raw)}
}

func dataPart(body string) uploadPart {
	return uploadPart{name: models.PartData, fileName: models.SnapshotFileName, body: body}
}

// ── GET /fingerprint ─────────────────────────────────────────────────────────

func TestGetFingerprint(t *testing.T) {
	fp := models.SyncFingerprint{DataID: "a", DataVersion: 1, DataTimestamp: ts(100)}

	tests := []struct {
		name       string
		fp         *models.SyncFingerprint
		err        error
		wantStatus int
	}{
		{"stored", &fp, nil, http.StatusOK},
		{"nothing stored", nil, nil, http.StatusNoContent},
		{"storage down", nil, store.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"unexpected", nil, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.backup.EXPECT().GetFingerprint(gomock.Any(), int64(7)).Return(tt.fp, tt.err)

			rr := httptest.NewRecorder()
			h.getFingerprint(rr, withUser(httptest.NewRequest(http.MethodGet, models.PathFingerprint, nil), 7, true))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"dataId":"a","dataVersion":1,"dataTimestamp":100}`, rr.Body.String())
			}
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestGetFingerprint_WithoutUser(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.getFingerprint(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, models.PathFingerprint, nil)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ── POST /backup ─────────────────────────────────────────────────────────────

func TestUploadBackup_Success(t *testing.T) {
	fp := models.SyncFingerprint{DataID: "a", DataVersion: 1, DataTimestamp: ts(100)}
	h, mocks := newTestHandler(t)

	mocks.backup.EXPECT().SaveBackup(gomock.Any(), int64(7), fp, "abc123", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ models.SyncFingerprint, _ string, data io.Reader) error {
			content, err := io.ReadAll(data)
			require.NoError(t, err)
			assert.Equal(t, "zip bytes", string(content))
			return nil
		})

	body, contentType := multipartBody(t, infoPart(t, fp), dataPart("zip bytes"))
	req := httptest.NewRequest(http.MethodPost, models.PathBackup, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(models.HashHeader, "abc123")

	rr := httptest.NewRecorder()
	h.uploadBackup(rr, withUser(req, 7, true))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUploadBackup_BadRequests(t *testing.T) {
	fp := models.SyncFingerprint{DataID: "a", DataVersion: 1}

	tests := []struct {
		name  string
		parts func(t *testing.T) []uploadPart
	}{
		{"no parts", func(*testing.T) []uploadPart { return nil }},
		{"data only", func(*testing.T) []uploadPart { return []uploadPart{dataPart("zip")} }},
		{"info only", func(t *testing.T) []uploadPart { return []uploadPart{infoPart(t, fp)} }},
		{"data before info", func(t *testing.T) []uploadPart { return []uploadPart{dataPart("zip"), infoPart(t, fp)} }},
		{"info not json", func(*testing.T) []uploadPart {
			return []uploadPart{{name: models.PartInfo, body: "{"}, dataPart("zip")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			body, contentType := multipartBody(t, tt.parts(t)...)
			req := httptest.NewRequest(http.MethodPost, models.PathBackup, body)
			req.Header.Set("Content-Type", contentType)

			rr := httptest.NewRecorder()
			h.uploadBackup(rr, withUser(req, 7, true))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestUploadBackup_NotMultipart(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, models.PathBackup, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.uploadBackup(rr, withUser(req, 7, true))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadBackup_ServiceErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrInvalidFingerprint, http.StatusBadRequest},
		{service.ErrHashMismatch, http.StatusBadRequest},
		{store.ErrBlobTooLarge, http.StatusRequestEntityTooLarge},
		{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{store.ErrBackupNotSaved, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.backup.EXPECT().SaveBackup(gomock.Any(), int64(7), gomock.Any(), "", gomock.Any()).Return(tt.err)

			body, contentType := multipartBody(t, infoPart(t, models.SyncFingerprint{DataID: "a"}), dataPart("zip"))
			req := httptest.NewRequest(http.MethodPost, models.PathBackup, body)
			req.Header.Set("Content-Type", contentType)

			rr := httptest.NewRecorder()
			h.uploadBackup(rr, withUser(req, 7, true))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── GET /backup ──────────────────────────────────────────────────────────────

func TestDownloadBackup_StreamsFrame(t *testing.T) {
	fp := models.SyncFingerprint{DataID: "a", DataVersion: 1, DataTimestamp: ts(100)}
	h, mocks := newTestHandler(t)
	mocks.backup.EXPECT().OpenBackup(gomock.Any(), int64(7)).Return(
		models.BackupRecord{UserID: 7, Fingerprint: fp, Size: 9},
		io.NopCloser(strings.NewReader("zip bytes")),
		nil,
	)

	rr := httptest.NewRecorder()
	h.downloadBackup(rr, withUser(httptest.NewRequest(http.MethodGet, models.PathBackup, nil), 7, true))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))

	header, err := codec.ReadHeader(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, fp, header.SyncFingerprint)
	require.NotNil(t, header.Size)
	assert.Equal(t, int64(9), *header.Size)

	blob, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, "zip bytes", string(blob))
}

func TestDownloadBackup_NotFound(t *testing.T) {
	for _, err := range []error{store.ErrBackupNotFound, store.ErrBlobNotFound} {
		t.Run(err.Error(), func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.backup.EXPECT().OpenBackup(gomock.Any(), int64(7)).Return(models.BackupRecord{}, nil, err)

			rr := httptest.NewRecorder()
			h.downloadBackup(rr, withUser(httptest.NewRequest(http.MethodGet, models.PathBackup, nil), 7, true))

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ── full router ──────────────────────────────────────────────────────────────

func TestInit_UploadThenDownloadThroughRouter(t *testing.T) {
	fp := models.SyncFingerprint{DataID: "a", DataVersion: 1, DataTimestamp: ts(100)}
	h, mocks := newTestHandler(t)
	router := h.Init()

	mocks.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(tokenFor(7, true), nil).Times(2)

	var stored []byte
	mocks.backup.EXPECT().SaveBackup(gomock.Any(), int64(7), fp, "", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ models.SyncFingerprint, _ string, data io.Reader) (err error) {
			stored, err = io.ReadAll(data)
			return err
		})
	mocks.backup.EXPECT().OpenBackup(gomock.Any(), int64(7)).DoAndReturn(
		func(context.Context, int64) (models.BackupRecord, io.ReadCloser, error) {
			return models.BackupRecord{Fingerprint: fp, Size: int64(len(stored))}, io.NopCloser(bytes.NewReader(stored)), nil
		})

	body, contentType := multipartBody(t, infoPart(t, fp), dataPart("snapshot"))
	upload := httptest.NewRequest(http.MethodPost, models.PathBackup, body)
	upload.Header.Set("Content-Type", contentType)
	upload.Header.Set("Authorization", "Bearer "+testToken)
	require.Equal(t, http.StatusOK, serve(router, upload).Code)

	download := httptest.NewRequest(http.MethodGet, models.PathBackup, nil)
	download.Header.Set("Authorization", "Bearer "+testToken)
	rr := serve(router, download)
	require.Equal(t, http.StatusOK, rr.Code)

	header, err := codec.ReadHeader(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, fp, header.SyncFingerprint)
	assert.Equal(t, "snapshot", rr.Body.String())
}
