// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/store"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/models"
)

type backupService struct {
	repository store.BackupRepository
	blobs      store.BlobStorage

	hashKey       string
	maxBackupSize int64

	logger *logger.Logger
}

// NewBackupService creates the server-side BackupService.
func NewBackupService(repository store.BackupRepository, blobs store.BlobStorage, appCfg config.ServerApp, storageCfg config.ServerStorage, logger *logger.Logger) BackupService {
	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &backupService{
		repository:    repository,
		blobs:         blobs,
		hashKey:       appCfg.HashKey,
		maxBackupSize: storageCfg.MaxBackupSize,
		logger:        logger,
	}
}

func (s *backupService) GetFingerprint(ctx context.Context, userID int64) (*models.SyncFingerprint, error) {
	record, err := s.repository.GetBackup(ctx, userID)
	if errors.Is(err, store.ErrBackupNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get backup of user %d: %w", userID, err)
	}

	return &record.Fingerprint, nil
}

// SaveBackup implements BackupService. The blob is written under a new name
// first; the metadata row is switched over next and only then the previous
// blob is removed, so a failed upload leaves the old backup intact.
func (s *backupService) SaveBackup(ctx context.Context, userID int64, fp models.SyncFingerprint, hash string, data io.Reader) error {
	log := logger.FromContext(ctx)

	if fp.DataID == "" || fp.DataVersion < 0 {
		log.Error().Stringer("fingerprint", fp).Msg("invalid fingerprint provided")
		return ErrInvalidFingerprint
	}

	path, size, err := s.blobs.Write(ctx, userID, data, s.maxBackupSize)
	if err != nil {
		return fmt.Errorf("write backup blob: %w", err)
	}

	if err = s.verifyHash(path, hash); err != nil {
		s.removeBlob(log, path)
		return err
	}

	previous, err := s.repository.SaveBackup(ctx, models.BackupRecord{
		UserID:      userID,
		Fingerprint: fp,
		BlobPath:    path,
		Size:        size,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.removeBlob(log, path)
		return fmt.Errorf("save backup of user %d: %w", userID, err)
	}

	if previous != "" && previous != path {
		s.removeBlob(log, previous)
	}

	log.Info().
		Int64("user_id", userID).
		Stringer("fingerprint", fp).
		Int64("size", size).
		Msg("backup saved")
	return nil
}

func (s *backupService) verifyHash(path, hash string) error {
	if s.hashKey == "" || hash == "" {
		return nil
	}

	blob, _, err := s.blobs.Open(path)
	if err != nil {
		return fmt.Errorf("open backup blob: %w", err)
	}
	defer blob.Close()

	sum, err := utils.HashReader(blob)
	if err != nil {
		return fmt.Errorf("hash backup blob: %w", err)
	}
	if !utils.HashesEqual(sum, hash) {
		return ErrHashMismatch
	}
	return nil
}

func (s *backupService) removeBlob(log *logger.Logger, path string) {
	if err := s.blobs.Remove(path); err != nil {
		log.Err(err).Str("path", path).Msg("failed to remove backup blob")
	}
}

func (s *backupService) OpenBackup(ctx context.Context, userID int64) (models.BackupRecord, io.ReadCloser, error) {
	record, err := s.repository.GetBackup(ctx, userID)
	if err != nil {
		return models.BackupRecord{}, nil, fmt.Errorf("get backup of user %d: %w", userID, err)
	}

	blob, size, err := s.blobs.Open(record.BlobPath)
	if err != nil {
		return models.BackupRecord{}, nil, fmt.Errorf("open backup of user %d: %w", userID, err)
	}
	record.Size = size

	return record, blob, nil
}
