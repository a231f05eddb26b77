// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/progress-sync/internal/logger"
)

type namedWorker struct {
	name string
	Worker
}

// Workers is a named set of workers run as a group.
type Workers struct {
	workers []namedWorker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers w under name. It must not be called after Run.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers = append(w.workers, namedWorker{name: name, Worker: worker})
	return w
}

// Run starts every worker and blocks until all of them return. The first
// error cancels the context passed to the others and is returned wrapped
// with the worker's name.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Debug().Str("worker", worker.name).Msg("worker started")

			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("worker", worker.name).Msg("worker failed")
				return fmt.Errorf("%s: %w", worker.name, err)
			}

			w.logger.Debug().Str("worker", worker.name).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}
