// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds and applies the goose schema migrations for the
// backup server metadata database and the client progress database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// ClientSchemaVersion is the progress database schema version written by this
// build. It is reported as DataVersion in sync fingerprints and must be bumped
// together with every new file under client/.
const ClientSchemaVersion = 1

// Dialects accepted by [MigrateServer].
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

var errNilDB = errors.New("db is nil")

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// MigrateServer applies the backup server migrations using dialect.
func MigrateServer(db *sql.DB, dialect string) error {
	return migrate(db, serverMigrations, "server", dialect)
}

// MigrateClient applies the progress database migrations. The client store
// is always SQLite.
func MigrateClient(db *sql.DB) error {
	return migrate(db, clientMigrations, "client", DialectSQLite)
}

func migrate(db *sql.DB, fsys embed.FS, dir, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
