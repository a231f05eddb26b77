// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Sync engine intent rejections.
var (
	// ErrSyncDisabled is returned for intents submitted while the engine is
	// Loading or Disabled.
	ErrSyncDisabled = errors.New("sync is disabled")

	// ErrNoConflict is returned for a conflict resolution submitted while no
	// conflict is pending.
	ErrNoConflict = errors.New("no conflict to resolve")

	// ErrDownloadUnavailable is returned when DownloadRemote is chosen for a
	// conflict whose remote copy cannot be restored.
	ErrDownloadUnavailable = errors.New("download is not available for this conflict")

	// ErrUnknownIntent is returned for an intent with an unknown kind or
	// strategy.
	ErrUnknownIntent = errors.New("unknown intent")
)

// Account and token errors.
var (
	// ErrNoToken means the client has no bearer token; the user is not
	// logged in.
	ErrNoToken = errors.New("no token")

	// ErrTokenIsExpired means the bearer token's exp claim has passed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsExpiredOrInvalid means the token failed verification.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoSubscription means the token carries no active subscription.
	ErrNoSubscription = errors.New("no active subscription")
)

// Snapshot transfer errors.
var (
	// ErrSizeMismatch is returned when a downloaded blob is shorter or longer
	// than the size announced in the frame header.
	ErrSizeMismatch = errors.New("snapshot size does not match header")

	// ErrUnsupportedDataVersion is returned when a downloaded snapshot was
	// written with a newer schema than this client supports.
	ErrUnsupportedDataVersion = errors.New("unsupported data version")

	// ErrHashMismatch is returned by the server when the HashSHA256 header
	// does not match the received snapshot.
	ErrHashMismatch = errors.New("snapshot hash mismatch")

	// ErrInvalidFingerprint is returned for a fingerprint with an empty data
	// id or a negative version.
	ErrInvalidFingerprint = errors.New("invalid fingerprint")

	// ErrVersionIsNotSpecified is returned when the app version is missing
	// from the configuration.
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
