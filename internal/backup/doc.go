// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup turns the client's local stores into a single snapshot
// archive and back.
//
// A snapshot is a zip archive with three entries:
//
//	manifest.json     schema version and creation time
//	progress.db       a VACUUM INTO copy of the SQLite progress database
//	preferences.yaml  the preferences file as it was on disk
//
// Restore validates the whole archive before it touches local data. Rows
// are replaced in one SQLite transaction, then the preferences file is
// swapped in by rename.
package backup
