// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
)

// Storages groups the backup server's persistence components.
type Storages struct {
	DB               *DB
	BackupRepository BackupRepository
	BlobStorage      BlobStorage
}

// NewStorages connects the metadata database, applies migrations and
// prepares the blob directory.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewServerDB(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewFileBlobStorage(cfg.BackupDir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:               db,
		BackupRepository: NewBackupRepository(db, logger),
		BlobStorage:      blobs,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
