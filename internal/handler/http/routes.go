// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/progress-sync/models"
)

// Init builds the router. Every route except the version probe requires a
// bearer token with an active subscription.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get(models.PathVersion, h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireSubscription)

		r.With(withGZip).Get(models.PathFingerprint, h.getFingerprint)
		r.Post(models.PathBackup, h.uploadBackup)
		r.Get(models.PathBackup, h.downloadBackup)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
