// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/progress-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator tells transient driver errors from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// BackupRepository stores the metadata row of each account's backup.
type BackupRepository interface {
	// GetBackup returns [ErrBackupNotFound] when the account has no backup.
	GetBackup(ctx context.Context, userID int64) (models.BackupRecord, error)
	// SaveBackup inserts or replaces the account's row and returns the
	// previous blob path, or "" if there was none.
	SaveBackup(ctx context.Context, record models.BackupRecord) (string, error)
}

// BlobStorage keeps snapshot blobs outside the database.
type BlobStorage interface {
	// Write streams r into a new blob and returns its path and size. At most
	// limit bytes are accepted when limit is positive.
	Write(ctx context.Context, userID int64, r io.Reader, limit int64) (string, int64, error)
	// Open returns the blob at path together with its size.
	Open(path string) (io.ReadCloser, int64, error)
	// Remove deletes the blob at path. Missing blobs are not an error.
	Remove(path string) error
}
