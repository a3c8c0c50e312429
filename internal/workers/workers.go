// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/service"
)

const lockCheckInterval = 30 * time.Second

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the background jobs of the security core: the periodic
// security check, the audit retention purge and the idle lock timer.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewTickerWorker("security_check", cfg.SecurityCheckTick, false, func(ctx context.Context) error {
				_, err := services.Security.RunSecurityCheck(ctx, false)
				return err
			}, log),
			NewTickerWorker("audit_retention", cfg.AuditRetentionInterval, true, func(ctx context.Context) error {
				_, err := services.Audit.PurgeOlderThan(ctx, 0)
				return err
			}, log),
			NewTickerWorker("lock_timer", lockCheckInterval, false, func(context.Context) error {
				if services.AppLock.LockIfExpired() {
					log.Debug().Str("func", "lock_timer").Msg("session timed out, app locked")
				}
				return nil
			}, log),
		},
		logger: log,
	}
}

// Run starts every worker and blocks until all of them returned, which
// happens once ctx is done.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("func", "Workers.Run").Str("worker", worker.Name()).Msg("worker started")
			worker.Run(gctx)
			w.logger.Info().Str("func", "Workers.Run").Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}
