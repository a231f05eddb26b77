// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no user id in request context")

	// ErrMissingPart is returned when the multipart upload lacks the info or
	// the data part, or carries them in the wrong order.
	ErrMissingPart = errors.New("missing multipart part")

	// ErrInvalidInfoPart is returned when the info part is not a JSON
	// fingerprint.
	ErrInvalidInfoPart = errors.New("invalid info part")
)
