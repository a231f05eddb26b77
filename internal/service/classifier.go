// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/progress-sync/models"

// ClassifyDiff compares the local, last-synced (cached) and remote
// fingerprints. The checks run in a fixed order and the first match wins:
//
//  1. no remote backup                         -> NoRemoteData
//  2. remote equals local                      -> Equal
//  3. remote schema newer than supported       -> RemoteUnsupported
//  4. no cached fingerprint, or both sides
//     moved away from the cached one           -> Incompatible
//  5. remote never modified, or local is later -> LocalNewer
//  6. otherwise                                -> RemoteNewer
//
// Step 4 only reports a conflict when local also changed since the last
// sync. A remote that advanced past an untouched local copy is an
// ordinary RemoteNewer.
//
// The function is pure and defined for every input.
func ClassifyDiff(local models.SyncFingerprint, cached, remote *models.SyncFingerprint, supportedVersion int) models.DiffType {
	switch {
	case remote == nil:
		return models.DiffNoRemoteData
	case remote.Equal(local):
		return models.DiffEqual
	case remote.DataVersion > supportedVersion:
		return models.DiffRemoteUnsupported
	case cached == nil || (!cached.Equal(*remote) && !cached.Equal(local)):
		return models.DiffIncompatible
	case remote.DataTimestamp == nil:
		return models.DiffLocalNewer
	case local.DataTimestamp != nil && *local.DataTimestamp > *remote.DataTimestamp:
		return models.DiffLocalNewer
	default:
		return models.DiffRemoteNewer
	}
}
