// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType is the closed vocabulary of security-relevant events recorded by
// the audit log.
type EventType string

const (
	EventHealthDataRead         EventType = "HEALTH_DATA_READ"
	EventHealthDataWrite        EventType = "HEALTH_DATA_WRITE"
	EventHealthDataDelete       EventType = "HEALTH_DATA_DELETE"
	EventHealthDataExport       EventType = "HEALTH_DATA_EXPORT"
	EventHealthDataSync         EventType = "HEALTH_DATA_SYNC"
	EventLoginSuccess           EventType = "LOGIN_SUCCESS"
	EventLoginFailure           EventType = "LOGIN_FAILURE"
	EventLogout                 EventType = "LOGOUT"
	EventBiometricAuthSuccess   EventType = "BIOMETRIC_AUTH_SUCCESS"
	EventBiometricAuthFailure   EventType = "BIOMETRIC_AUTH_FAILURE"
	EventAppLock                EventType = "APP_LOCK"
	EventAppUnlock              EventType = "APP_UNLOCK"
	EventDataDeletion           EventType = "DATA_DELETION"
	EventAccountTermination     EventType = "ACCOUNT_TERMINATION"
	EventPrivacySettingsChange  EventType = "PRIVACY_SETTINGS_CHANGE"
	EventSecuritySettingsChange EventType = "SECURITY_SETTINGS_CHANGE"
	EventExternalSync           EventType = "EXTERNAL_SYNC"
	EventThirdPartyAccess       EventType = "THIRD_PARTY_ACCESS"
	EventSensitiveDataAccess    EventType = "SENSITIVE_DATA_ACCESS"
	EventEncryptionKeyRotation  EventType = "ENCRYPTION_KEY_ROTATION"
	EventBackupCreated          EventType = "BACKUP_CREATED"
	EventBackupRestored         EventType = "BACKUP_RESTORED"
)

// AllEventTypes lists every known event type in declaration order.
var AllEventTypes = []EventType{
	EventHealthDataRead, EventHealthDataWrite, EventHealthDataDelete, EventHealthDataExport,
	EventHealthDataSync, EventLoginSuccess, EventLoginFailure, EventLogout,
	EventBiometricAuthSuccess, EventBiometricAuthFailure, EventAppLock, EventAppUnlock,
	EventDataDeletion, EventAccountTermination, EventPrivacySettingsChange,
	EventSecuritySettingsChange, EventExternalSync, EventThirdPartyAccess,
	EventSensitiveDataAccess, EventEncryptionKeyRotation, EventBackupCreated, EventBackupRestored,
}

// IsCritical reports whether events of this type are mirrored to the
// diagnostic log in addition to the audit table.
func (e EventType) IsCritical() bool {
	switch e {
	case EventDataDeletion,
		EventAccountTermination,
		EventEncryptionKeyRotation,
		EventLoginFailure,
		EventBiometricAuthFailure:
		return true
	default:
		return false
	}
}

// Valid reports whether e belongs to the known vocabulary.
func (e EventType) Valid() bool {
	for _, known := range AllEventTypes {
		if e == known {
			return true
		}
	}
	return false
}

// Resource types used by the typed audit helpers.
const (
	ResourceHealthData       = "HEALTH_DATA"
	ResourceAuthentication   = "AUTHENTICATION"
	ResourceDataDeletion     = "DATA_DELETION"
	ResourcePrivacy          = "PRIVACY_SETTINGS"
	ResourceSecurity         = "SECURITY_SETTINGS"
	ResourceSensitiveData    = "SENSITIVE_DATA"
	ResourceExternalPlatform = "EXTERNAL_PLATFORM"
	ResourceAppSession       = "APP_SESSION"
)

// AuditEvent is what callers hand to the audit sink. Empty strings mean
// "absent" for the optional fields.
type AuditEvent struct {
	UserID         string
	EventType      EventType
	Action         string
	ResourceType   string
	ResourceID     string
	AdditionalInfo string
}

// AuditLogEntry is a persisted audit record. Entries are append-only and are
// removed only by the age-based retention purge.
type AuditLogEntry struct {
	ID             string
	UserID         string
	EventType      EventType
	Action         string
	ResourceType   string
	ResourceID     string
	Timestamp      time.Time
	DeviceInfo     string
	UserAgent      string
	SessionID      string
	AdditionalInfo string
}

// DefaultAuditQueryLimit is applied when AuditFilter.Limit is zero.
const DefaultAuditQueryLimit = 100

// NoAuditQueryLimit as AuditFilter.Limit returns every matching entry.
const NoAuditQueryLimit = -1

// AuditFilter narrows audit log queries. Zero values disable the
// corresponding condition.
type AuditFilter struct {
	UserID       string
	EventType    EventType
	ResourceType string
	ResourceID   string
	From         time.Time
	To           time.Time
	Limit        int
}
