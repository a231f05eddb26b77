// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived loops of a process together.
//
// A [Worker] blocks in Run until its context is canceled or it fails.
// [Workers] starts a set of them in an errgroup: the first failure cancels
// the others, and Run returns once all of them have stopped.
package workers

import "context"

// Worker is a long-running loop.
//
// Run must return when ctx is done. Returning nil before that is allowed
// and does not stop the other workers.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
