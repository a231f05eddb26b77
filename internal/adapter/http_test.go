// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken   = "header.payload.signature"
	testHashKey = "testhashkey"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

// newTestAdapter creates an httpBackupAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, tokens TokenSource) *httpBackupAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey, Version: "test"}

	a, err := NewHTTPBackupAdapter(adapterCfg, appCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackupAdapter)
}

func writeSnapshot(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.zip")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func ts(v int64) *int64 { return &v }

// ── NewHTTPBackupAdapter ─────────────────────────────────────────────────────

func TestNewHTTPBackupAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPBackupAdapter(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, staticTokens{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://backup.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://backup.example.com", got)
}

// ── GetFingerprint ───────────────────────────────────────────────────────────

func TestGetFingerprint_Success(t *testing.T) {
	want := models.SyncFingerprint{DataID: "a", DataVersion: 3, DataTimestamp: ts(100)}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, models.PathFingerprint, r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	got, err := a.GetFingerprint(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got))
}

func TestGetFingerprint_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	got, err := a.GetFingerprint(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetFingerprint_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "payment required", status: http.StatusPaymentRequired, wantErr: ErrPaymentRequired},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "teapot", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
			_, err := a.GetFingerprint(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetFingerprint_Malformed(t *testing.T) {
	for _, body := range []string{`{not json`, `{"dataVersion":3}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
		_, err := a.GetFingerprint(context.Background())
		srv.Close()

		assert.ErrorIs(t, err, ErrMalformedResponse, body)
	}
}

func TestGetFingerprint_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, staticTokens{token: testToken})
	_, err := a.GetFingerprint(context.Background())

	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestGetFingerprint_TimeoutIsNoConnection(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	a.requestTimeout = 50 * time.Millisecond

	_, err := a.GetFingerprint(context.Background())
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestGetFingerprint_CancelIsNotNoConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err := a.GetFingerprint(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNoConnection)
}

func TestGetFingerprint_TokenError(t *testing.T) {
	tokenErr := errors.New("token expired")
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{err: tokenErr})
	_, err := a.GetFingerprint(context.Background())

	assert.ErrorIs(t, err, tokenErr)
	assert.False(t, called, "no request must be sent without a token")
}

// ── UploadBackup ─────────────────────────────────────────────────────────────

func TestUploadBackup_SendsMultipart(t *testing.T) {
	fp := models.SyncFingerprint{DataID: "a", DataVersion: 3, DataTimestamp: ts(100)}
	content := bytes.Repeat([]byte("zip"), 1000)
	path := writeSnapshot(t, content)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, models.PathBackup, r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		var info models.SyncFingerprint
		require.NoError(t, json.Unmarshal([]byte(r.MultipartForm.Value[models.PartInfo][0]), &info))
		assert.True(t, fp.Equal(info))

		files := r.MultipartForm.File[models.PartData]
		require.Len(t, files, 1)
		assert.Equal(t, models.SnapshotFileName, files[0].Filename)

		f, err := files[0].Open()
		require.NoError(t, err)
		defer f.Close()
		got, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		assert.Equal(t, utils.HashString(string(content), testHashKey), r.Header.Get(models.HashHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	require.NoError(t, a.UploadBackup(context.Background(), fp, path))
}

func TestUploadBackup_StreamsInfoBeforeData(t *testing.T) {
	content := bytes.Repeat([]byte("z"), 256<<10)
	path := writeSnapshot(t, content)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, int64(-1), r.ContentLength, "body must be streamed, not pre-sized")

		mr, err := r.MultipartReader()
		require.NoError(t, err)

		part, err := mr.NextPart()
		require.NoError(t, err)
		assert.Equal(t, models.PartInfo, part.FormName())
		assert.Equal(t, "application/json", part.Header.Get("Content-Type"))

		part, err = mr.NextPart()
		require.NoError(t, err)
		assert.Equal(t, models.PartData, part.FormName())
		assert.Equal(t, models.SnapshotFileName, part.FileName())
		got, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Len(t, got, len(content))

		_, err = mr.NextPart()
		assert.ErrorIs(t, err, io.EOF)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	require.NoError(t, a.UploadBackup(context.Background(), models.SyncFingerprint{DataID: "a"}, path))
}

func TestStreamMultipart_ClosedBodyReleasesWriter(t *testing.T) {
	body, contentType, wait := streamMultipart(context.Background(), []byte(`{}`), bytes.NewReader(make([]byte, 1<<20)))
	assert.Contains(t, contentType, "multipart/form-data; boundary=")

	require.NoError(t, body.Close())

	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("writer goroutine did not exit after the body was closed")
	}
}

func TestStreamMultipart_CanceledContextAbortsBody(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	body, _, wait := streamMultipart(ctx, []byte(`{}`), bytes.NewReader([]byte("zip")))
	_, err := io.ReadAll(body)
	wait()

	assert.ErrorIs(t, err, context.Canceled)
}

func TestUploadBackup_NoHashKeyNoHeader(t *testing.T) {
	path := writeSnapshot(t, []byte("zip"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(models.HashHeader))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	a.hashKey = ""
	require.NoError(t, a.UploadBackup(context.Background(), models.SyncFingerprint{DataID: "a"}, path))
}

func TestUploadBackup_StatusErrors(t *testing.T) {
	for status, wantErr := range map[int]error{
		http.StatusUnauthorized:          ErrUnauthorized,
		http.StatusPaymentRequired:       ErrPaymentRequired,
		http.StatusRequestEntityTooLarge: ErrRequestTooLarge,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
		err := a.UploadBackup(context.Background(), models.SyncFingerprint{DataID: "a"}, writeSnapshot(t, []byte("zip")))
		srv.Close()

		assert.ErrorIs(t, err, wantErr)
	}
}

func TestUploadBackup_MissingSnapshot(t *testing.T) {
	a := newTestAdapter(t, "localhost:1", staticTokens{token: testToken})
	err := a.UploadBackup(context.Background(), models.SyncFingerprint{DataID: "a"}, filepath.Join(t.TempDir(), "absent.zip"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ── DownloadBackup ───────────────────────────────────────────────────────────

func TestDownloadBackup_ReturnsRawStream(t *testing.T) {
	frame := []byte{0, 0, 0, 2, '{', '}', 'b', 'l', 'o', 'b'}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, models.PathBackup, r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(frame)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	body, err := a.DownloadBackup(context.Background())
	require.NoError(t, err)
	defer body.Close()

	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestDownloadBackup_StatusErrors(t *testing.T) {
	for status, wantErr := range map[int]error{
		http.StatusNotFound:        ErrNotFound,
		http.StatusNoContent:       ErrNotFound,
		http.StatusUnauthorized:    ErrUnauthorized,
		http.StatusPaymentRequired: ErrPaymentRequired,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
		_, err := a.DownloadBackup(context.Background())
		srv.Close()

		assert.ErrorIs(t, err, wantErr, http.StatusText(status))
	}
}

func TestDownloadBackup_CancelInterruptsRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0, 0, 0, 2, '{', '}'})
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens{token: testToken})
	ctx, cancel := context.WithCancel(context.Background())

	body, err := a.DownloadBackup(ctx)
	require.NoError(t, err)
	defer body.Close()

	time.AfterFunc(50*time.Millisecond, cancel)
	_, err = io.ReadAll(body)
	assert.Error(t, err)
}
