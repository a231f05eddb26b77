// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/models"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestInit_RegistersRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	registered := map[string][]string{}
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	assert.ElementsMatch(t, []string{http.MethodGet}, registered[models.PathVersion])
	assert.ElementsMatch(t, []string{http.MethodGet}, registered[models.PathFingerprint])
	assert.ElementsMatch(t, []string{http.MethodGet, http.MethodPost}, registered[models.PathBackup])
}

func TestInit_VersionIsPublic(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, models.PathVersion, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, models.PathFingerprint},
		{http.MethodGet, models.PathBackup},
		{http.MethodPost, models.PathBackup},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodDelete, models.PathBackup, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, POST", rr.Header().Get("Allow"))
}

func TestGetServerVersion(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3-beta+build.42")

	rr := httptest.NewRecorder()
	h.getServerVersion(rr, httptest.NewRequest(http.MethodGet, models.PathVersion, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3-beta+build.42", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}
