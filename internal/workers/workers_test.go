// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/mock"
	"github.com/MKhiriev/go-health-guard/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	name     string
	runCount atomic.Int64
}

func (m *mockWorker) Name() string { return m.name }

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func runFor(t *testing.T, ws *Workers, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	require.NoError(t, ws.Run(ctx))
}

// ── Workers ──────────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{name: "a"}, &mockWorker{name: "b"}, &mockWorker{name: "c"}

	ws := &Workers{workers: []Worker{w1, w2, w3}, logger: logger.Nop()}
	runFor(t, ws, 20*time.Millisecond)

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int64(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{logger: logger.Nop()}

	// Should not block or panic on empty workers list
	runFor(t, ws, time.Millisecond)
}

func TestWorkers_Run_ReturnsAfterCancel(t *testing.T) {
	ws := &Workers{workers: []Worker{&mockWorker{name: "a"}}, logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run не завершился после отмены контекста")
	}
}

// ── tickerWorker ─────────────────────────────────────────────────────────────

func TestTickerWorker_RunsOnTick(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker("t", 5*time.Millisecond, false, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
	assert.Equal(t, "t", w.Name())
}

func TestTickerWorker_Immediate(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker("t", time.Hour, true, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.Equal(t, int64(1), calls.Load())
}

func TestTickerWorker_SurvivesErrorsAndPanics(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker("t", 5*time.Millisecond, true, func(context.Context) error {
		switch calls.Add(1) {
		case 1:
			panic("first tick explodes")
		case 2:
			return errors.New("second tick fails")
		}
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	assert.NotPanics(t, func() { w.Run(ctx) })
	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestNewTickerWorker_DefaultInterval(t *testing.T) {
	w := NewTickerWorker("t", 0, false, func(context.Context) error { return nil }, logger.Nop())
	assert.Equal(t, time.Hour, w.(*tickerWorker).interval)
}

// ── NewWorkers ───────────────────────────────────────────────────────────────

func TestNewWorkers_WiresServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	security := mock.NewMockSecurityService(ctrl)
	audit := mock.NewMockAuditService(ctrl)
	appLock := mock.NewMockAppLockService(ctrl)

	var once sync.Once
	purged := make(chan struct{})

	security.EXPECT().RunSecurityCheck(gomock.Any(), false).Return(false, nil).MinTimes(1)
	audit.EXPECT().PurgeOlderThan(gomock.Any(), 0).DoAndReturn(func(context.Context, int) (int64, error) {
		once.Do(func() { close(purged) })
		return 0, nil
	}).MinTimes(1)
	appLock.EXPECT().LockIfExpired().Return(false).AnyTimes()

	ws := NewWorkers(&service.Services{
		Security: security,
		Audit:    audit,
		AppLock:  appLock,
	}, config.Workers{
		SecurityCheckTick:      5 * time.Millisecond,
		AuditRetentionInterval: time.Hour,
	}, logger.Nop())
	require.Len(t, ws.workers, 3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	select {
	case <-purged:
	case <-time.After(time.Second):
		t.Fatal("очистка аудита при старте не выполнена")
	}
	time.Sleep(30 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestNewWorkers_LockTimerOnlyLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	appLock := mock.NewMockAppLockService(ctrl)

	// Recompute не ожидается: таймер не должен снимать явную блокировку
	appLock.EXPECT().LockIfExpired().Return(true)

	ws := NewWorkers(&service.Services{AppLock: appLock}, config.Workers{}, logger.Nop())

	var timer *tickerWorker
	for _, w := range ws.workers {
		if w.Name() == "lock_timer" {
			timer = w.(*tickerWorker)
		}
	}
	require.NotNil(t, timer)
	assert.Equal(t, lockCheckInterval, timer.interval)

	timer.tick(context.Background())
}
