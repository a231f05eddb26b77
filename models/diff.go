// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DiffType classifies how the local, last-synced and remote fingerprints
// relate to each other.
type DiffType int

const (
	// DiffNoRemoteData means the server holds no backup for the account.
	DiffNoRemoteData DiffType = iota + 1

	// DiffEqual means the remote fingerprint equals the local one.
	DiffEqual

	// DiffRemoteUnsupported means the remote dataset was written with a
	// newer schema than this client can read.
	DiffRemoteUnsupported

	// DiffIncompatible means the remote side changed since this device last
	// confirmed a sync, so the timestamps cannot be trusted.
	DiffIncompatible

	// DiffLocalNewer means local changes should be uploaded.
	DiffLocalNewer

	// DiffRemoteNewer means the remote snapshot should be downloaded.
	DiffRemoteNewer
)

var diffTypeNames = map[DiffType]string{
	DiffNoRemoteData:      "no_remote_data",
	DiffEqual:             "equal",
	DiffRemoteUnsupported: "remote_unsupported",
	DiffIncompatible:      "incompatible",
	DiffLocalNewer:        "local_newer",
	DiffRemoteNewer:       "remote_newer",
}

// String returns the snake_case name of the diff type.
func (d DiffType) String() string {
	if name, ok := diffTypeNames[d]; ok {
		return name
	}
	return "unknown"
}

// IsConflict reports whether the diff requires an explicit user decision.
func (d DiffType) IsConflict() bool {
	return d == DiffIncompatible || d == DiffRemoteUnsupported
}
