// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id and the
// token's subscription flag in the request context under
// [utils.UserIDCtxKey] and [utils.SubscriptionCtxKey]. The request-scoped
// logger gains a user_id field.
//
// Requests are rejected with 401 when the header is missing or malformed,
// or when the token is expired or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "request without token")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, service.ErrNoToken, "malformed authorization header")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "token rejected")
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		ctx = l.WithContext(ctx)

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.SubscriptionCtxKey, token.Claims.SubscriptionActive)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSubscription answers 402 unless the authenticated token carries an
// active subscription. It must run after auth.
func (h *Handler) requireSubscription(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.GetSubscriptionFromContext(r.Context()) {
			writeError(w, r, service.ErrNoSubscription, "subscription required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
