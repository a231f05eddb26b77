// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/mock"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/internal/utils"
)

const testToken = "stub-token"

type testServices struct {
	auth    *mock.MockAuthService
	backup  *mock.MockBackupService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		backup:  mock.NewMockBackupService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		BackupService:  mocks.backup,
		AppInfoService: mocks.appInfo,
	}, logger.Nop())
	return h, mocks
}

// injectLogger puts l into the request context the same way withTraceID
// does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func injectNopLogger(r *http.Request) *http.Request {
	return injectLogger(r, zerolog.Nop())
}

func newBufferedLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

// withUser simulates a request that passed the auth middleware.
func withUser(r *http.Request, userID int64, subscriptionActive bool) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.SubscriptionCtxKey, subscriptionActive)
	return injectNopLogger(r.WithContext(ctx))
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
