// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBackupNotFound is returned when the account has never uploaded a
	// snapshot.
	ErrBackupNotFound = errors.New("backup was not found")

	// ErrBackupNotSaved is returned when the upsert of a backup row affects
	// no rows.
	ErrBackupNotSaved = errors.New("backup was not saved")

	// ErrBlobNotFound is returned when a backup row references a blob file
	// that is missing on disk.
	ErrBlobNotFound = errors.New("backup blob was not found")

	// ErrBlobTooLarge is returned when an incoming snapshot exceeds the
	// configured size limit. The partial blob is removed.
	ErrBlobTooLarge = errors.New("backup blob is too large")

	// ErrDeckNotFound is returned when a deck mutation targets an unknown id.
	ErrDeckNotFound = errors.New("deck was not found")

	// ErrStorageUnavailable wraps driver errors classified as retryable, such
	// as lost connections or a locked database.
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")

	// ErrInvalidPreferences is returned when the preferences file is not a
	// YAML mapping.
	ErrInvalidPreferences = errors.New("invalid preferences file")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
