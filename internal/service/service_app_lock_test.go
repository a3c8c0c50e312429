// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppLock(t *testing.T, prefs *memPrefs, clock *fakeClock) *appLockService {
	t.Helper()
	return newAppLockService(prefs, clock.Now, logger.Nop())
}

// ── initial state ────────────────────────────────────────────────────────────

func TestAppLock_DisabledStartsUnlocked(t *testing.T) {
	s := newTestAppLock(t, newMemPrefs(), newFakeClock())

	state := s.State()
	assert.False(t, state.IsLocked)
	assert.False(t, state.UnlockRequired)
	assert.NotEmpty(t, s.SessionID(), "разблокированная сессия должна иметь id")
}

func TestAppLock_EnabledWithStaleUnlockStartsLocked(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	prefs.data[prefAppLockEnabled] = true
	prefs.data[prefLastUnlockTime] = clock.Now().Add(-10 * time.Minute).UnixMilli()

	s := newTestAppLock(t, prefs, clock)

	assert.True(t, s.State().IsLocked)
	assert.True(t, s.State().UnlockRequired)
	assert.Empty(t, s.SessionID())
}

func TestAppLock_EnabledWithRecentUnlockStartsUnlocked(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	prefs.data[prefAppLockEnabled] = true
	prefs.data[prefLastUnlockTime] = clock.Now().Add(-time.Minute).UnixMilli()

	s := newTestAppLock(t, prefs, clock)

	assert.False(t, s.State().IsLocked)
}

// ── LockIfExpired ────────────────────────────────────────────────────────────

func TestAppLock_LockIfExpired_KeepsExplicitLock(t *testing.T) {
	clock := newFakeClock()
	s := newTestAppLock(t, newMemPrefs(), clock)
	ctx := context.Background()

	require.NoError(t, s.SetAppLockEnabled(ctx, true))
	require.NoError(t, s.Unlock(ctx))
	s.Lock()

	clock.Advance(30 * time.Second)
	assert.False(t, s.LockIfExpired())

	assert.True(t, s.State().IsLocked, "явная блокировка не снимается таймером")
	assert.True(t, s.State().UnlockRequired)
	assert.Empty(t, s.SessionID())
}

func TestAppLock_LockIfExpired_LocksAfterTimeout(t *testing.T) {
	clock := newFakeClock()
	s := newTestAppLock(t, newMemPrefs(), clock)
	ctx := context.Background()

	require.NoError(t, s.SetAppLockEnabled(ctx, true))
	require.NoError(t, s.Unlock(ctx))

	clock.Advance(5 * time.Minute)
	assert.False(t, s.LockIfExpired(), "ровно timeout: ещё не блокируем")
	assert.False(t, s.State().IsLocked)

	clock.Advance(time.Second)
	assert.True(t, s.LockIfExpired())
	assert.True(t, s.State().IsLocked)
	assert.Empty(t, s.SessionID())

	assert.False(t, s.LockIfExpired(), "повторный вызов ничего не меняет")
}

func TestAppLock_LockIfExpired_DisabledNeverLocks(t *testing.T) {
	clock := newFakeClock()
	s := newTestAppLock(t, newMemPrefs(), clock)

	clock.Advance(time.Hour)

	assert.False(t, s.LockIfExpired())
	assert.False(t, s.State().IsLocked)
}

// ── Recompute ────────────────────────────────────────────────────────────────

func TestAppLock_Recompute_TimeoutBoundary(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	s := newTestAppLock(t, prefs, clock)
	ctx := context.Background()

	require.NoError(t, s.SetAppLockEnabled(ctx, true))
	require.NoError(t, s.Unlock(ctx))
	require.False(t, s.State().IsLocked)

	// ровно timeout: ещё не блокируем
	clock.Advance(5 * time.Minute)
	s.Recompute()
	assert.False(t, s.State().IsLocked)

	clock.Advance(time.Millisecond)
	s.Recompute()
	assert.True(t, s.State().IsLocked)
	assert.Equal(t, s.State().IsLocked, s.State().UnlockRequired)
}

func TestAppLock_Recompute_Idempotent(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	prefs.data[prefAppLockEnabled] = true
	s := newTestAppLock(t, prefs, clock)

	first := s.State()
	s.Recompute()
	s.Recompute()
	assert.Equal(t, first, s.State())
}

func TestAppLock_DisabledNeverLocks(t *testing.T) {
	clock := newFakeClock()
	s := newTestAppLock(t, newMemPrefs(), clock)

	clock.Advance(24 * time.Hour)
	s.Recompute()

	assert.False(t, s.State().IsLocked)
	assert.False(t, s.State().UnlockRequired)
}

// ── Lock / Unlock ────────────────────────────────────────────────────────────

func TestAppLock_LockClearsSession(t *testing.T) {
	s := newTestAppLock(t, newMemPrefs(), newFakeClock())

	s.Lock()

	assert.True(t, s.State().IsLocked)
	assert.True(t, s.State().UnlockRequired)
	assert.Empty(t, s.SessionID())
}

func TestAppLock_UnlockPersistsAndOpensNewSession(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	s := newTestAppLock(t, prefs, clock)
	ctx := context.Background()

	before := s.SessionID()
	clock.Advance(time.Minute)
	require.NoError(t, s.Unlock(ctx))

	assert.NotEqual(t, before, s.SessionID())
	assert.Equal(t, clock.Now().UnixMilli(), s.State().LastUnlock)
	assert.Equal(t, clock.Now().UnixMilli(), prefs.GetInt64(prefLastUnlockTime, 0))
}

func TestAppLock_UnlockPersistFailureStillUnlocks(t *testing.T) {
	prefs := newMemPrefs()
	s := newTestAppLock(t, prefs, newFakeClock())
	s.Lock()

	prefs.setWriteErr(errBoom)
	err := s.Unlock(context.Background())

	require.ErrorIs(t, err, errBoom)
	assert.False(t, s.State().IsLocked)
	assert.NotEmpty(t, s.SessionID())
}

// ── settings ─────────────────────────────────────────────────────────────────

func TestAppLock_SetLockTimeoutMinutes_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "below range", in: 0, want: models.MinLockTimeoutMinutes},
		{name: "negative", in: -5, want: models.MinLockTimeoutMinutes},
		{name: "in range", in: 30, want: 30},
		{name: "above range", in: 61, want: models.MaxLockTimeoutMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestAppLock(t, newMemPrefs(), newFakeClock())
			require.NoError(t, s.SetLockTimeoutMinutes(context.Background(), tt.in))
			assert.Equal(t, tt.want, s.LockTimeoutMinutes())
		})
	}
}

func TestAppLock_LockTimeoutDefault(t *testing.T) {
	s := newTestAppLock(t, newMemPrefs(), newFakeClock())
	assert.Equal(t, models.DefaultLockTimeoutMinutes, s.LockTimeoutMinutes())
}

func TestAppLock_SetAppLockEnabledFalseUnlocks(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	prefs.data[prefAppLockEnabled] = true
	s := newTestAppLock(t, prefs, clock)
	require.True(t, s.State().IsLocked)

	require.NoError(t, s.SetAppLockEnabled(context.Background(), false))

	assert.False(t, s.IsAppLockEnabled())
	assert.False(t, s.State().IsLocked)
	assert.Equal(t, clock.Now().UnixMilli(), s.State().LastUnlock)
}

func TestAppLock_SetTimeoutRecomputes(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	s := newTestAppLock(t, prefs, clock)
	ctx := context.Background()

	require.NoError(t, s.SetLockTimeoutMinutes(ctx, 30))
	require.NoError(t, s.SetAppLockEnabled(ctx, true))
	require.NoError(t, s.Unlock(ctx))

	clock.Advance(10 * time.Minute)
	require.NoError(t, s.SetLockTimeoutMinutes(ctx, 5))

	assert.True(t, s.State().IsLocked)
}

func TestAppLock_SettingsWriteFailure(t *testing.T) {
	prefs := newMemPrefs()
	s := newTestAppLock(t, prefs, newFakeClock())
	prefs.setWriteErr(errBoom)
	ctx := context.Background()

	assert.ErrorIs(t, s.SetAppLockEnabled(ctx, true), errBoom)
	assert.ErrorIs(t, s.SetBiometricEnabled(ctx, true), errBoom)
	assert.ErrorIs(t, s.SetLockTimeoutMinutes(ctx, 10), errBoom)
	assert.False(t, s.IsAppLockEnabled())
	assert.False(t, s.IsBiometricEnabled())
}

func TestAppLock_BiometricFlag(t *testing.T) {
	s := newTestAppLock(t, newMemPrefs(), newFakeClock())

	require.NoError(t, s.SetBiometricEnabled(context.Background(), true))
	assert.True(t, s.IsBiometricEnabled())
}

// ── TimeUntilLock / ExtendSession ────────────────────────────────────────────

func TestAppLock_TimeUntilLock(t *testing.T) {
	clock := newFakeClock()
	s := newTestAppLock(t, newMemPrefs(), clock)
	ctx := context.Background()

	assert.Equal(t, InfiniteDuration, s.TimeUntilLock())

	require.NoError(t, s.SetAppLockEnabled(ctx, true))
	require.NoError(t, s.Unlock(ctx))
	clock.Advance(2 * time.Minute)
	assert.Equal(t, 3*time.Minute, s.TimeUntilLock())

	clock.Advance(time.Hour)
	assert.Equal(t, time.Duration(0), s.TimeUntilLock())
}

func TestAppLock_ExtendSession(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	s := newTestAppLock(t, prefs, clock)
	ctx := context.Background()

	require.NoError(t, s.SetAppLockEnabled(ctx, true))
	require.NoError(t, s.Unlock(ctx))
	session := s.SessionID()

	clock.Advance(4 * time.Minute)
	require.NoError(t, s.ExtendSession(ctx))
	clock.Advance(4 * time.Minute)
	s.Recompute()

	assert.False(t, s.State().IsLocked)
	assert.Equal(t, session, s.SessionID(), "продление не меняет сессию")
}

func TestAppLock_ExtendSessionWhileLockedIsNoop(t *testing.T) {
	clock := newFakeClock()
	prefs := newMemPrefs()
	prefs.data[prefAppLockEnabled] = true
	s := newTestAppLock(t, prefs, clock)
	require.True(t, s.State().IsLocked)

	require.NoError(t, s.ExtendSession(context.Background()))

	assert.True(t, s.State().IsLocked)
	assert.False(t, prefs.Contains(prefLastUnlockTime))
}

// ── Subscribe / lifecycle ────────────────────────────────────────────────────

func TestAppLock_SubscribeObservesLock(t *testing.T) {
	clock := newFakeClock()
	s := newTestAppLock(t, newMemPrefs(), clock)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Subscribe(ctx)
	first := <-ch
	assert.False(t, first.IsLocked)

	s.Lock()
	select {
	case st := <-ch:
		assert.True(t, st.IsLocked)
	case <-time.After(time.Second):
		t.Fatal("изменение состояния не доставлено")
	}
}

func TestAppLock_OnForegroundRecomputes(t *testing.T) {
	clock := newFakeClock()
	s := newTestAppLock(t, newMemPrefs(), clock)
	ctx := context.Background()

	require.NoError(t, s.SetAppLockEnabled(ctx, true))
	require.NoError(t, s.Unlock(ctx))
	s.OnBackground()

	clock.Advance(6 * time.Minute)
	s.OnForeground()

	assert.True(t, s.State().IsLocked)
}

func TestNewAppLockService_ReturnsInterface(t *testing.T) {
	var s AppLockService = NewAppLockService(newMemPrefs(), logger.Nop())
	require.NotNil(t, s)
}
