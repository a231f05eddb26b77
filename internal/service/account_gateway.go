// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/models"
)

type accountGateway struct {
	mu    sync.Mutex
	token models.Token
	raw   string

	statuses *broadcaster[models.AccountStatus]
	now      func() time.Time

	logger *logger.Logger
}

// NewAccountGateway creates an AccountGateway for the bearer token
// configured on the client. The token's claims are read without verifying
// the signature; the server is the only party that validates it. An empty
// token means the user is not logged in.
func NewAccountGateway(rawToken string, logger *logger.Logger) AccountGateway {
	return newAccountGateway(rawToken, time.Now, logger)
}

func newAccountGateway(rawToken string, now func() time.Time, logger *logger.Logger) *accountGateway {
	g := &accountGateway{
		raw:    rawToken,
		now:    now,
		logger: logger.WithComponent("account-gateway"),
	}

	status := models.AccountStatus{Resolved: true}
	if rawToken != "" {
		token, err := utils.ParseUnverifiedToken(rawToken)
		if err != nil {
			g.logger.Err(err).Msg("configured account token is malformed")
			g.raw = ""
		} else {
			g.token = token
			status.LoggedIn = !g.expired()
			status.SubscriptionActive = token.Claims.SubscriptionActive
			status.UserID = token.UserID
			if !status.LoggedIn {
				status.Notice = models.NoticeAuthExpired
			}
		}
	}

	g.statuses = newBroadcaster(status)
	g.logger.Info().
		Bool("logged_in", status.LoggedIn).
		Bool("subscription_active", status.SubscriptionActive).
		Msg("account status resolved")

	return g
}

func (g *accountGateway) Status() models.AccountStatus {
	return g.statuses.Current()
}

func (g *accountGateway) Subscribe() (<-chan models.AccountStatus, func()) {
	return g.statuses.Subscribe()
}

func (g *accountGateway) Token(_ context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.raw == "" {
		return "", ErrNoToken
	}
	if g.expired() {
		return "", ErrTokenIsExpired
	}
	return g.raw, nil
}

// NotifyAuthExpired logs the user out locally. The token is kept so that
// the user id stays visible, but sync is disabled until a new token is
// configured.
func (g *accountGateway) NotifyAuthExpired() {
	g.logger.Warn().Msg("server rejected the account token")

	status := g.statuses.Current()
	status.LoggedIn = false
	status.Notice = models.NoticeAuthExpired
	g.statuses.Publish(status)
}

func (g *accountGateway) NotifyNoSubscription() {
	g.logger.Warn().Msg("server reported no active subscription")

	status := g.statuses.Current()
	status.SubscriptionActive = false
	status.Notice = models.NoticeNoSubscription
	g.statuses.Publish(status)
}

// expired reports whether the token's exp claim has passed. Tokens without
// exp never expire.
func (g *accountGateway) expired() bool {
	if g.token.Token == nil || g.token.Claims.ExpiresAt == nil {
		return false
	}
	return !g.now().Before(g.token.Claims.ExpiresAt.Time)
}
