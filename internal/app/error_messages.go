// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the backup
// server handlers and by the client when it interprets error bodies.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the multipart form or the
	// fingerprint part cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidFingerprint is returned when the uploaded fingerprint has an
	// empty data id or a negative data version.
	MsgInvalidFingerprint = "invalid fingerprint"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the metadata database is
	// temporarily unreachable.
	MsgStorageUnavailable = "storage is temporarily unavailable"

	// MsgNoTokenProvided is returned when the Authorization header is
	// missing or is not a bearer token.
	MsgNoTokenProvided = "no token provided"

	// MsgTokenIsExpired is returned when a JWT bearer token is
	// syntactically valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoSubscription is returned with 402 when the token carries no
	// active subscription.
	MsgNoSubscription = "no active subscription"

	// MsgBackupNotFound is returned when the account has no backup.
	MsgBackupNotFound = "backup not found"

	// MsgBackupTooLarge is returned with 413 when the snapshot exceeds the
	// configured size limit.
	MsgBackupTooLarge = "backup is too large"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the received snapshot.
	MsgHashMismatch = "hash mismatch"

	// MsgMethodNotAllowed is returned by the method check middleware.
	MsgMethodNotAllowed = "method not allowed"
)
