// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/internal/utils"
	"github.com/MKhiriev/go-health-guard/models"
)

const (
	actionBiometricEnrolled = "BIOMETRIC_ENROLLED"
	actionBiometricRevoked  = "BIOMETRIC_REVOKED"
	actionFieldKeyRecorded  = "FIELD_KEY_RECORDED"

	settingBiometric = "BIOMETRIC"
	settingFieldKey  = "ENCRYPTION_KEY"
)

// EnrollBiometric binds biometric unlock to userID. The enrolment id lives in
// the user's biometric key slot, so deleting the user's preferences revokes
// it.
func (s *securityService) EnrollBiometric(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if !s.biometric.CanUseBiometric() {
		return ErrBiometricUnavailable
	}

	enrolment := utils.NewID()
	if err := s.prefs.PutString(ctx, store.BiometricKeyKey(userID), enrolment); err != nil {
		s.logger.Err(err).Str("func", "securityService.EnrollBiometric").Msg("error storing biometric enrolment")
		return fmt.Errorf("store biometric enrolment: %w", err)
	}
	if err := s.appLock.SetBiometricEnabled(ctx, true); err != nil {
		return err
	}

	s.audit.LogSecuritySettingsChange(userID, actionBiometricEnrolled, settingBiometric, "", enrolment)
	s.refreshStatus()
	return nil
}

// RevokeBiometric clears the enrolment of userID and turns biometric unlock
// off.
func (s *securityService) RevokeBiometric(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	previous := s.prefs.GetString(store.BiometricKeyKey(userID), "")
	if err := s.prefs.Remove(ctx, store.BiometricKeyKey(userID)); err != nil {
		s.logger.Err(err).Str("func", "securityService.RevokeBiometric").Msg("error removing biometric enrolment")
		return fmt.Errorf("remove biometric enrolment: %w", err)
	}
	if err := s.appLock.SetBiometricEnabled(ctx, false); err != nil {
		return err
	}

	s.audit.LogSecuritySettingsChange(userID, actionBiometricRevoked, settingBiometric, previous, "")
	s.refreshStatus()
	return nil
}

// BiometricEnrolment returns the enrolment id of userID, or "" if the user
// never enrolled.
func (s *securityService) BiometricEnrolment(userID string) string {
	return s.prefs.GetString(store.BiometricKeyKey(userID), "")
}

// recordFieldKey stores when the field encryption key was first used. The
// record survives restarts and is cleared only by a full wipe.
func (s *securityService) recordFieldKey(ctx context.Context) {
	slot := store.EncryptionKeyKey(crypto.FieldKeyAlias)
	if s.prefs.Contains(slot) {
		return
	}

	createdAt := s.now().UnixMilli()
	if err := s.prefs.PutInt64(ctx, slot, createdAt); err != nil {
		s.logger.Err(err).Str("func", "securityService.recordFieldKey").Msg("error recording field key")
		return
	}
	s.audit.Log(models.AuditEvent{
		EventType:      models.EventEncryptionKeyRotation,
		Action:         actionFieldKeyRecorded,
		ResourceType:   models.ResourceSecurity,
		ResourceID:     settingFieldKey,
		AdditionalInfo: "created_at=" + strconv.FormatInt(createdAt, 10),
	})
}

// FieldKeyCreatedAt returns the epoch milliseconds recorded for the field
// encryption key, or 0 before the first start.
func (s *securityService) FieldKeyCreatedAt() int64 {
	return s.prefs.GetInt64(store.EncryptionKeyKey(crypto.FieldKeyAlias), 0)
}
