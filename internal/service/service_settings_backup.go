// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/MKhiriev/go-health-guard/models"
)

const (
	actionSettingsBackupCreated  = "SETTINGS_BACKUP_CREATED"
	actionSettingsBackupRestored = "SETTINGS_BACKUP_RESTORED"
)

// settingsBackupMarkers select the user-facing settings out of the secure
// preferences. Credentials, tokens and bookkeeping keys never match.
var settingsBackupMarkers = []string{"_enabled", "_allowed", prefLockTimeoutMinutes}

func isBackedUpSetting(key string) bool {
	if strings.HasPrefix(key, "user_") {
		return false
	}
	for _, marker := range settingsBackupMarkers {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

// BackupSettings returns the lock, biometric and privacy settings as a flat
// map suitable for JSON.
func (s *securityService) BackupSettings(ctx context.Context, userID string) (map[string]any, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	backup := make(map[string]any)
	for _, marker := range settingsBackupMarkers {
		maps.Copy(backup, s.prefs.ExportKeysContaining(marker))
	}
	maps.DeleteFunc(backup, func(key string, _ any) bool { return !isBackedUpSetting(key) })

	s.audit.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      models.EventBackupCreated,
		Action:         actionSettingsBackupCreated,
		ResourceType:   models.ResourceSecurity,
		AdditionalInfo: fmt.Sprintf("entries=%d", len(backup)),
	})

	return backup, nil
}

// RestoreSettings imports a map produced by BackupSettings. Unknown keys are
// ignored. Lock state, privacy settings and the status snapshot are
// recomputed from the restored values.
func (s *securityService) RestoreSettings(ctx context.Context, userID string, entries map[string]any) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	restored := make(map[string]any, len(entries))
	for key, value := range entries {
		if !isBackedUpSetting(key) {
			continue
		}
		restored[key] = settingValue(key, value)
	}

	if err := s.prefs.ImportEntries(ctx, restored); err != nil {
		s.logger.Err(err).Str("func", "securityService.RestoreSettings").Msg("error importing settings")
		return fmt.Errorf("import settings: %w", err)
	}

	if err := s.privacy.Update(ctx, loadPrivacySettings(s.prefs), ""); err != nil {
		return fmt.Errorf("reload privacy settings: %w", err)
	}
	s.appLock.Recompute()
	s.refreshStatus()

	s.audit.Log(models.AuditEvent{
		UserID:         userID,
		EventType:      models.EventBackupRestored,
		Action:         actionSettingsBackupRestored,
		ResourceType:   models.ResourceSecurity,
		AdditionalInfo: fmt.Sprintf("entries=%d", len(restored)),
	})

	return nil
}

// settingValue turns JSON-decoded numbers back into the int stored for the
// lock timeout.
func settingValue(key string, value any) any {
	if key != prefLockTimeoutMinutes {
		return value
	}

	switch v := value.(type) {
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case int64:
		return int(v)
	}
	return value
}
