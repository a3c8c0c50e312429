// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/logger"
)

// tickerWorker calls job every interval. A failing or panicking job is
// logged and retried on the next tick.
type tickerWorker struct {
	name      string
	interval  time.Duration
	immediate bool
	job       func(ctx context.Context) error
	logger    *logger.Logger
}

// NewTickerWorker returns a Worker running job every interval, and once at
// start when immediate is set. A non-positive interval defaults to one hour.
func NewTickerWorker(name string, interval time.Duration, immediate bool, job func(ctx context.Context) error, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = time.Hour
	}

	return &tickerWorker{
		name:      name,
		interval:  interval,
		immediate: immediate,
		job:       job,
		logger:    log,
	}
}

func (w *tickerWorker) Name() string {
	return w.name
}

func (w *tickerWorker) Run(ctx context.Context) {
	if w.immediate {
		w.tick(ctx)
	}

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.tick(ctx)
		}
	}
}

func (w *tickerWorker) tick(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			w.logger.Error().Str("func", "tickerWorker.tick").Str("worker", w.name).Interface("panic", p).Msg("job panicked")
		}
	}()

	if err := w.job(ctx); err != nil && ctx.Err() == nil {
		w.logger.Err(err).Str("func", "tickerWorker.tick").Str("worker", w.name).Msg("job failed")
	}
}
