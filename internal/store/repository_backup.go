// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/models"
)

// backupRepository is the SQL implementation of [BackupRepository]. It holds
// exactly one row per account in the "backups" table.
type backupRepository struct {
	*DB
	logger *logger.Logger
}

// NewBackupRepository constructs a [BackupRepository] backed by db.
func NewBackupRepository(db *DB, logger *logger.Logger) BackupRepository {
	return &backupRepository{
		DB:     db,
		logger: logger,
	}
}

func (b *backupRepository) GetBackup(ctx context.Context, userID int64) (models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBackupQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetBackup").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.BackupRecord{}, err
	}

	var (
		record    models.BackupRecord
		timestamp sql.NullInt64
	)
	err = b.DB.QueryRowContext(ctx, query, args...).Scan(
		&record.UserID,
		&record.Fingerprint.DataID,
		&record.Fingerprint.DataVersion,
		&timestamp,
		&record.BlobPath,
		&record.Size,
		&record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BackupRecord{}, ErrBackupNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetBackup").
			Int64("user_id", userID).
			Msg("failed to scan backup row")
		return models.BackupRecord{}, b.wrapDriverError(ErrScanningRow, err)
	}

	if timestamp.Valid {
		record.Fingerprint.DataTimestamp = &timestamp.Int64
	}

	return record, nil
}

func (b *backupRepository) SaveBackup(ctx context.Context, record models.BackupRecord) (string, error) {
	log := logger.FromContext(ctx).GetChildLogger()
	log.Logger = log.With().
		Str("func", "backupRepository.SaveBackup").
		Int64("user_id", record.UserID).
		Str("data_id", record.Fingerprint.DataID).
		Logger()

	selectQuery, selectArgs, err := buildGetBlobPathQuery(record.UserID)
	if err != nil {
		log.Err(err).Msg("failed to create select query")
		return "", err
	}
	upsertQuery, upsertArgs, err := buildUpsertBackupQuery(record)
	if err != nil {
		log.Err(err).Msg("failed to create upsert query")
		return "", err
	}

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return "", b.wrapDriverError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var previous string
	err = tx.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&previous)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Msg("failed to read previous blob path")
		return "", b.wrapDriverError(ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, upsertQuery, upsertArgs...)
	if err != nil {
		log.Err(err).Msg("failed to upsert backup row")
		return "", b.wrapDriverError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", b.wrapDriverError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().Msg("upsert affected no rows")
		return "", ErrBackupNotSaved
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return "", b.wrapDriverError(ErrCommitingTransaction, err)
	}

	log.Debug().Str("previous_blob", previous).Msg("backup row saved")
	return previous, nil
}
