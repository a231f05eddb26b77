// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errServerNotConfigured is returned when there is no HTTP handler or no
// listen address to serve it on.
var errServerNotConfigured = errors.New("backup server has no handler or listen address")
