// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IntentKind is the tag of [Intent].
type IntentKind int

const (
	// IntentRefresh recomputes the diff without transferring data.
	IntentRefresh IntentKind = iota + 1

	// IntentSync recomputes the diff and uploads or downloads as needed.
	IntentSync

	// IntentResolveConflict applies the user's choice to a conflict.
	IntentResolveConflict
)

// String returns the snake_case name of the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentRefresh:
		return "refresh"
	case IntentSync:
		return "sync"
	case IntentResolveConflict:
		return "resolve_conflict"
	default:
		return "unknown"
	}
}

// ConflictStrategy is the user's decision for a conflict.
type ConflictStrategy int

const (
	// UploadLocal overwrites the server copy with the local dataset.
	UploadLocal ConflictStrategy = iota + 1

	// DownloadRemote replaces the local dataset with the server copy.
	DownloadRemote
)

// String returns the snake_case name of the strategy.
func (s ConflictStrategy) String() string {
	switch s {
	case UploadLocal:
		return "upload_local"
	case DownloadRemote:
		return "download_remote"
	default:
		return "unknown"
	}
}

// Intent is a request submitted to the sync engine. Intents are consumed
// immediately and never persisted.
type Intent struct {
	Kind IntentKind

	// Strategy is only meaningful for IntentResolveConflict.
	Strategy ConflictStrategy
}

// RefreshIntent returns a Refresh intent.
func RefreshIntent() Intent { return Intent{Kind: IntentRefresh} }

// SyncIntent returns a Sync intent.
func SyncIntent() Intent { return Intent{Kind: IntentSync} }

// ResolveConflictIntent returns a ResolveConflict intent with the given strategy.
func ResolveConflictIntent(strategy ConflictStrategy) Intent {
	return Intent{Kind: IntentResolveConflict, Strategy: strategy}
}

// String returns a log-friendly representation of the intent.
func (i Intent) String() string {
	if i.Kind == IntentResolveConflict {
		return i.Kind.String() + "(" + i.Strategy.String() + ")"
	}
	return i.Kind.String()
}
