// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Wire names shared by the backup adapter and the backup server.
const (
	// PathFingerprint serves the stored fingerprint as JSON, or 204.
	PathFingerprint = "/fingerprint"

	// PathBackup accepts multipart uploads and serves framed downloads.
	PathBackup = "/backup"

	// PathVersion serves the server version as plain text.
	PathVersion = "/version"

	// HashHeader carries the hex HMAC-SHA256 of the uploaded snapshot.
	HashHeader = "HashSHA256"

	// Multipart part names and the snapshot file name of POST /backup.
	PartInfo         = "info"
	PartData         = "data"
	SnapshotFileName = "data.zip"
)
