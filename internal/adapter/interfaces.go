// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the backup server.
//
// The primary abstraction is [BackupAdapter], which decouples the sync
// engine from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackupAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrPaymentRequired] for 402).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/progress-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backup_adapter_mock.go -package=mock

// TokenSource supplies the bearer token attached to every request.
// Implementations return an error when no usable token is available; the
// adapter forwards that error unchanged.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// BackupAdapter defines communication with the backup server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BackupAdapter interface {
	// GetFingerprint fetches the fingerprint of the stored backup. It
	// returns (nil, nil) when the server holds no backup for the account.
	GetFingerprint(ctx context.Context) (*models.SyncFingerprint, error)

	// UploadBackup sends the snapshot stored at snapshotPath together with
	// its fingerprint as a multipart request. The upload replaces any
	// previous backup of the account.
	UploadBackup(ctx context.Context, fingerprint models.SyncFingerprint, snapshotPath string) error

	// DownloadBackup opens the framed backup stream. The caller must close
	// the returned reader. Closing it, or cancelling ctx, aborts the
	// transfer.
	DownloadBackup(ctx context.Context) (io.ReadCloser, error)
}
