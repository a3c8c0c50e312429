// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/internal/utils"
	"github.com/MKhiriev/go-health-guard/internal/watch"
	"github.com/MKhiriev/go-health-guard/models"
)

// InfiniteDuration is returned by TimeUntilLock while app lock is disabled.
const InfiniteDuration = time.Duration(math.MaxInt64)

type appLockService struct {
	prefs store.Preferences

	// mu serialises state transitions; readers go through state.
	mu      sync.Mutex
	state   *watch.Value[models.LockState]
	session atomic.Value

	now    func() time.Time
	logger *logger.Logger
}

// NewAppLockService restores the last unlock time from prefs and derives the
// initial lock state from it.
func NewAppLockService(prefs store.Preferences, log *logger.Logger) AppLockService {
	return newAppLockService(prefs, time.Now, log)
}

func newAppLockService(prefs store.Preferences, now func() time.Time, log *logger.Logger) *appLockService {
	s := &appLockService{
		prefs: prefs,
		state: watch.New(models.LockState{
			LastUnlock: prefs.GetInt64(prefLastUnlockTime, 0),
		}),
		now:    now,
		logger: log,
	}
	s.session.Store("")
	s.Recompute()

	return s
}

func (s *appLockService) State() models.LockState {
	return s.state.Get()
}

func (s *appLockService) Subscribe(ctx context.Context) <-chan models.LockState {
	return s.state.Subscribe(ctx)
}

func (s *appLockService) SessionID() string {
	return s.session.Load().(string)
}

func (s *appLockService) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(true, s.state.Get().LastUnlock)
}

func (s *appLockService) Unlock(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMilli()
	err := s.prefs.PutInt64(ctx, prefLastUnlockTime, now)

	s.session.Store(utils.NewSessionID())
	s.state.Set(models.LockState{LastUnlock: now})

	if err != nil {
		s.logger.Err(err).Str("func", "appLockService.Unlock").Msg("failed to persist last unlock time")
		return fmt.Errorf("persist last unlock time: %w", err)
	}
	return nil
}

func (s *appLockService) Recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recompute()
}

func (s *appLockService) LockIfExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Get()
	if current.IsLocked || !s.IsAppLockEnabled() {
		return false
	}

	timeout := time.Duration(s.LockTimeoutMinutes()) * time.Minute
	if s.now().UnixMilli()-current.LastUnlock <= timeout.Milliseconds() {
		return false
	}

	s.setLocked(true, current.LastUnlock)
	return true
}

// recompute must be called with mu held.
func (s *appLockService) recompute() {
	last := s.state.Get().LastUnlock
	if !s.IsAppLockEnabled() {
		s.setLocked(false, last)
		return
	}

	timeout := time.Duration(s.LockTimeoutMinutes()) * time.Minute
	elapsed := s.now().UnixMilli() - last
	s.setLocked(elapsed > timeout.Milliseconds(), last)
}

// setLocked must be called with mu held.
func (s *appLockService) setLocked(locked bool, lastUnlock int64) {
	if locked {
		s.session.Store("")
	} else if s.SessionID() == "" {
		s.session.Store(utils.NewSessionID())
	}

	s.state.Set(models.LockState{
		IsLocked:       locked,
		UnlockRequired: locked,
		LastUnlock:     lastUnlock,
	})
}

func (s *appLockService) ExtendSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Get()
	if !s.IsAppLockEnabled() || current.IsLocked {
		return nil
	}

	now := s.now().UnixMilli()
	if err := s.prefs.PutInt64(ctx, prefLastUnlockTime, now); err != nil {
		s.logger.Err(err).Str("func", "appLockService.ExtendSession").Msg("failed to persist last unlock time")
		return fmt.Errorf("persist last unlock time: %w", err)
	}

	current.LastUnlock = now
	s.state.Set(current)
	return nil
}

func (s *appLockService) TimeUntilLock() time.Duration {
	if !s.IsAppLockEnabled() {
		return InfiniteDuration
	}

	timeout := time.Duration(s.LockTimeoutMinutes()) * time.Minute
	elapsed := time.Duration(s.now().UnixMilli()-s.state.Get().LastUnlock) * time.Millisecond

	return max(0, timeout-elapsed)
}

func (s *appLockService) IsAppLockEnabled() bool {
	return s.prefs.GetBool(prefAppLockEnabled, false)
}

func (s *appLockService) SetAppLockEnabled(ctx context.Context, enabled bool) error {
	if err := s.prefs.PutBool(ctx, prefAppLockEnabled, enabled); err != nil {
		return fmt.Errorf("persist app lock flag: %w", err)
	}

	if !enabled {
		return s.Unlock(ctx)
	}
	s.Recompute()
	return nil
}

func (s *appLockService) IsBiometricEnabled() bool {
	return s.prefs.GetBool(prefBiometricEnabled, false)
}

func (s *appLockService) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	if err := s.prefs.PutBool(ctx, prefBiometricEnabled, enabled); err != nil {
		return fmt.Errorf("persist biometric flag: %w", err)
	}
	return nil
}

func (s *appLockService) LockTimeoutMinutes() int {
	return clampTimeout(s.prefs.GetInt(prefLockTimeoutMinutes, models.DefaultLockTimeoutMinutes))
}

func (s *appLockService) SetLockTimeoutMinutes(ctx context.Context, minutes int) error {
	if err := s.prefs.PutInt(ctx, prefLockTimeoutMinutes, clampTimeout(minutes)); err != nil {
		return fmt.Errorf("persist lock timeout: %w", err)
	}

	s.Recompute()
	return nil
}

func (s *appLockService) OnForeground() {
	s.Recompute()
}

func (s *appLockService) OnBackground() {
	s.logger.Debug().
		Str("func", "appLockService.OnBackground").
		Dur("time_until_lock", s.TimeUntilLock()).
		Msg("application moved to background")
}

func clampTimeout(minutes int) int {
	return min(max(minutes, models.MinLockTimeoutMinutes), models.MaxLockTimeoutMinutes)
}
