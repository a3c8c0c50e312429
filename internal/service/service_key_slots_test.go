// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── EnrollBiometric ──────────────────────────────────────────────────────────

func TestSecurity_EnrollBiometric(t *testing.T) {
	s, d := newTestSecurity(t)
	d.bioAvailable.Store(true)

	require.NoError(t, s.EnrollBiometric(context.Background(), "u1"))

	enrolment := s.BiometricEnrolment("u1")
	assert.NotEmpty(t, enrolment)
	assert.Equal(t, enrolment, d.prefs.data[store.BiometricKeyKey("u1")])
	assert.True(t, d.appLock.IsBiometricEnabled())
	assert.True(t, s.Status().BiometricEnabled)
	assert.Contains(t, d.audit.Actions(), actionBiometricEnrolled)
	assert.Empty(t, s.BiometricEnrolment("u2"))
}

func TestSecurity_EnrollBiometricUnavailable(t *testing.T) {
	s, d := newTestSecurity(t)

	err := s.EnrollBiometric(context.Background(), "u1")

	require.ErrorIs(t, err, ErrBiometricUnavailable)
	assert.False(t, d.prefs.Contains(store.BiometricKeyKey("u1")))
	assert.False(t, d.appLock.IsBiometricEnabled())
	assert.Empty(t, d.audit.Actions())
}

func TestSecurity_EnrollBiometricErrors(t *testing.T) {
	s, d := newTestSecurity(t)
	d.bioAvailable.Store(true)

	assert.ErrorIs(t, s.EnrollBiometric(context.Background(), ""), ErrEmptyUserID)

	d.prefs.setWriteErr(errBoom)
	assert.ErrorIs(t, s.EnrollBiometric(context.Background(), "u1"), errBoom)
	assert.NotContains(t, d.audit.Actions(), actionBiometricEnrolled)
}

// ── RevokeBiometric ──────────────────────────────────────────────────────────

func TestSecurity_RevokeBiometric(t *testing.T) {
	s, d := newTestSecurity(t)
	d.bioAvailable.Store(true)
	ctx := context.Background()
	require.NoError(t, s.EnrollBiometric(ctx, "u1"))

	require.NoError(t, s.RevokeBiometric(ctx, "u1"))

	assert.Empty(t, s.BiometricEnrolment("u1"))
	assert.False(t, d.appLock.IsBiometricEnabled())
	assert.Contains(t, d.audit.Actions(), actionBiometricRevoked)
	assert.ErrorIs(t, s.RevokeBiometric(ctx, ""), ErrEmptyUserID)
}

func TestSecurity_BiometricEnrolmentIsNotBackedUp(t *testing.T) {
	s, d := newTestSecurity(t)
	d.bioAvailable.Store(true)
	ctx := context.Background()
	require.NoError(t, s.EnrollBiometric(ctx, "u1"))

	backup, err := s.BackupSettings(ctx, "u1")

	require.NoError(t, err)
	assert.NotContains(t, backup, store.BiometricKeyKey("u1"))
	assert.Equal(t, true, backup[prefBiometricEnabled])
}

// ── field key record ─────────────────────────────────────────────────────────

func TestSecurity_StartRecordsFieldKeyOnce(t *testing.T) {
	s, d := newTestSecurity(t)
	ctx := context.Background()
	assert.Zero(t, s.FieldKeyCreatedAt())

	require.NoError(t, s.Start(ctx))
	created := d.clock.Now().UnixMilli()
	assert.Equal(t, created, s.FieldKeyCreatedAt())
	assert.Equal(t, created, d.prefs.data[store.EncryptionKeyKey(crypto.FieldKeyAlias)])

	s.Stop()
	d.clock.Advance(48 * time.Hour)
	require.NoError(t, s.Start(ctx))

	assert.Equal(t, created, s.FieldKeyCreatedAt(), "запись о ключе не перезаписывается")
	records := d.audit.ByEventType(models.EventEncryptionKeyRotation)
	require.Len(t, records, 1)
	assert.Equal(t, actionFieldKeyRecorded, records[0].Action)
}
