// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupRecord is the server-side metadata of the single backup an account
// owns. The snapshot blob itself is kept outside the database.
type BackupRecord struct {
	UserID      int64
	Fingerprint SyncFingerprint
	BlobPath    string
	Size        int64
	UpdatedAt   time.Time
}
