// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is a transport listener managed by this package.
//
// Run starts serving and blocks until ctx is canceled or the listener
// fails. Cancellation triggers a graceful shutdown; Run returns nil when the
// shutdown completes in time.
type Server interface {
	Run(ctx context.Context) error
}
