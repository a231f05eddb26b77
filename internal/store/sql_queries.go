// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/progress-sync/models"
)

const backupsTable = "backups"

// psql uses $n placeholders, which both pgx and go-sqlite3 accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var backupColumns = []string{
	"user_id",
	"data_id",
	"data_version",
	"data_timestamp",
	"blob_path",
	"size",
	"updated_at",
}

func buildGetBackupQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(backupColumns...).
		From(backupsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetBlobPathQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select("blob_path").
		From(backupsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertBackupQuery(record models.BackupRecord) (string, []any, error) {
	query, args, err := psql.
		Insert(backupsTable).
		Columns(backupColumns...).
		Values(
			record.UserID,
			record.Fingerprint.DataID,
			record.Fingerprint.DataVersion,
			record.Fingerprint.DataTimestamp,
			record.BlobPath,
			record.Size,
			record.UpdatedAt,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			data_id = excluded.data_id,
			data_version = excluded.data_version,
			data_timestamp = excluded.data_timestamp,
			blob_path = excluded.blob_path,
			size = excluded.size,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
