// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/progress-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BackupService keeps the single snapshot each account owns on the backup
// server.
type BackupService interface {
	// GetFingerprint returns the fingerprint of the stored backup, or nil
	// when the account has none.
	GetFingerprint(ctx context.Context, userID int64) (*models.SyncFingerprint, error)

	// SaveBackup stores data as the account's backup, replacing the previous
	// one. hash is the hex HMAC-SHA256 announced by the client; it is
	// verified when both sides have a hash key.
	SaveBackup(ctx context.Context, userID int64, fp models.SyncFingerprint, hash string, data io.Reader) error

	// OpenBackup returns the stored backup's metadata and blob. The caller
	// closes the blob.
	OpenBackup(ctx context.Context, userID int64) (models.BackupRecord, io.ReadCloser, error)
}

// AuthService issues and validates bearer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64, subscriptionActive bool) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
