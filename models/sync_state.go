// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// StateKind is the top-level tag of [SyncState].
type StateKind int

const (
	// StateLoading means the account status is not known yet.
	StateLoading StateKind = iota

	// StateDisabled means sync is off: not logged in or no active
	// subscription.
	StateDisabled

	// StateEnabled means sync is available; see [SyncState.Session].
	StateEnabled
)

// String returns the snake_case name of the state kind.
func (k StateKind) String() string {
	switch k {
	case StateLoading:
		return "loading"
	case StateDisabled:
		return "disabled"
	case StateEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// SessionKind is the tag of [SessionState].
type SessionKind int

const (
	// SessionTrackingChanges is the idle state.
	SessionTrackingChanges SessionKind = iota
	SessionRefreshing
	SessionUploading
	SessionDownloading
	SessionConflict
	SessionCanceled
	SessionError
)

var sessionKindNames = map[SessionKind]string{
	SessionTrackingChanges: "tracking_changes",
	SessionRefreshing:      "refreshing",
	SessionUploading:       "uploading",
	SessionDownloading:     "downloading",
	SessionConflict:        "conflict",
	SessionCanceled:        "canceled",
	SessionError:           "error",
}

// String returns the snake_case name of the session kind.
func (k SessionKind) String() string {
	if name, ok := sessionKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ConflictInfo is the payload of a Conflict session state.
type ConflictInfo struct {
	Diff   DiffType
	Local  SyncFingerprint
	Cached *SyncFingerprint
	Remote *SyncFingerprint
}

// CanDownload reports whether resolving the conflict by downloading the
// remote snapshot is allowed. A remote written with an unsupported schema can
// only be overwritten.
func (c ConflictInfo) CanDownload() bool {
	if c.Remote == nil {
		return false
	}
	return c.Diff == DiffRemoteNewer || c.Diff == DiffIncompatible
}

// SessionState is the sub-state of an enabled sync session. Only the payload
// field that matches Kind is set.
type SessionState struct {
	Kind SessionKind

	// UploadRecommended is set on TrackingChanges when local data is newer.
	UploadRecommended bool

	// Conflict is set on Conflict.
	Conflict *ConflictInfo

	// Issue is set on Error.
	Issue *APIRequestIssue
}

// SyncState is the externally observable condition of the sync engine.
type SyncState struct {
	Kind    StateKind
	Session SessionState
}

// LoadingState returns the initial state.
func LoadingState() SyncState {
	return SyncState{Kind: StateLoading}
}

// DisabledState returns the state used while sync is unavailable.
func DisabledState() SyncState {
	return SyncState{Kind: StateDisabled}
}

// EnabledState wraps a session state.
func EnabledState(session SessionState) SyncState {
	return SyncState{Kind: StateEnabled, Session: session}
}

// TrackingChanges returns the idle session state.
func TrackingChanges(uploadRecommended bool) SessionState {
	return SessionState{Kind: SessionTrackingChanges, UploadRecommended: uploadRecommended}
}

// Refreshing returns the session state emitted while a Refresh runs.
func Refreshing() SessionState { return SessionState{Kind: SessionRefreshing} }

// Uploading returns the session state emitted while an upload runs.
func Uploading() SessionState { return SessionState{Kind: SessionUploading} }

// Downloading returns the session state emitted while a download runs.
func Downloading() SessionState { return SessionState{Kind: SessionDownloading} }

// Canceled returns the session state emitted after an explicit cancel.
func Canceled() SessionState { return SessionState{Kind: SessionCanceled} }

// Conflict returns a conflict session state carrying info.
func Conflict(info ConflictInfo) SessionState {
	return SessionState{Kind: SessionConflict, Conflict: &info}
}

// Failed returns an error session state carrying issue.
func Failed(issue *APIRequestIssue) SessionState {
	return SessionState{Kind: SessionError, Issue: issue}
}

// IsEnabled reports whether the engine accepts intents in this state.
func (s SyncState) IsEnabled() bool {
	return s.Kind == StateEnabled
}

// IsBusy reports whether a long-running operation is in flight.
func (s SyncState) IsBusy() bool {
	if s.Kind != StateEnabled {
		return false
	}
	switch s.Session.Kind {
	case SessionRefreshing, SessionUploading, SessionDownloading:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer] for log output.
func (s SyncState) String() string {
	if s.Kind != StateEnabled {
		return s.Kind.String()
	}

	switch s.Session.Kind {
	case SessionTrackingChanges:
		return fmt.Sprintf("enabled/%s(upload_recommended=%t)", s.Session.Kind, s.Session.UploadRecommended)
	case SessionConflict:
		if s.Session.Conflict != nil {
			return fmt.Sprintf("enabled/%s(%s)", s.Session.Kind, s.Session.Conflict.Diff)
		}
	case SessionError:
		if s.Session.Issue != nil {
			return fmt.Sprintf("enabled/%s(%s)", s.Session.Kind, s.Session.Issue.Kind)
		}
	}
	return "enabled/" + s.Session.Kind.String()
}
