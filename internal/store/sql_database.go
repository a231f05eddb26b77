// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/migrations"
)

// DB wraps a *sql.DB together with the dialect it was opened with and the
// classifier used to tell transient driver errors from permanent ones.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewServerDB opens the backup server metadata database. DSNs that look like
// PostgreSQL connection strings are opened with pgx, anything else is treated
// as a SQLite file path.
func NewServerDB(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(dsn) {
		return NewConnectPostgres(ctx, dsn, log)
	}
	return NewConnectSQLite(ctx, dsn, log)
}

// Migrate applies the server schema in the dialect the DB was opened with.
func (db *DB) Migrate() error {
	return migrations.MigrateServer(db.DB, db.dialect)
}

// MigrateClient applies the client progress schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// wrapDriverError tags err with [ErrStorageUnavailable] when the classifier
// considers it transient.
func (db *DB) wrapDriverError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=")
}
