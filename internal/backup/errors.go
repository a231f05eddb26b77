// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import "errors"

var (
	// ErrInvalidSnapshot is returned when an archive is not a readable zip
	// or lacks a required entry.
	ErrInvalidSnapshot = errors.New("invalid snapshot archive")

	// ErrUnsupportedSnapshot is returned when the archive was written with a
	// newer schema than this build can read.
	ErrUnsupportedSnapshot = errors.New("unsupported snapshot schema version")
)
