// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppLockService is the session lock state machine. The state is either
// UNLOCKED or LOCKED; IsLocked and UnlockRequired always move together.
type AppLockService interface {
	State() models.LockState
	// Subscribe delivers the current state and every later change until ctx
	// is done. Slow readers only see the latest state.
	Subscribe(ctx context.Context) <-chan models.LockState
	// SessionID is the id of the current unlocked session, empty while
	// locked.
	SessionID() string

	Lock()
	// Unlock opens a new session and persists the unlock time. The state is
	// unlocked even when persisting fails; the error is returned.
	Unlock(ctx context.Context) error
	// Recompute derives the state from the lock settings and the time since
	// the last unlock. It is idempotent and safe for concurrent use.
	Recompute()
	// LockIfExpired locks an unlocked session whose timeout has elapsed. It
	// never unlocks. It reports whether the state changed.
	LockIfExpired() bool
	// ExtendSession re-stamps the last unlock time while unlocked.
	ExtendSession(ctx context.Context) error
	// TimeUntilLock returns InfiniteDuration when app lock is disabled.
	TimeUntilLock() time.Duration

	IsAppLockEnabled() bool
	SetAppLockEnabled(ctx context.Context, enabled bool) error
	IsBiometricEnabled() bool
	SetBiometricEnabled(ctx context.Context, enabled bool) error
	LockTimeoutMinutes() int
	// SetLockTimeoutMinutes clamps minutes into the allowed range.
	SetLockTimeoutMinutes(ctx context.Context, minutes int) error

	OnForeground()
	OnBackground()
}

// BiometricService bridges the platform biometric prompt into a single
// outcome per request.
type BiometricService interface {
	CheckAvailability() models.BiometricResult
	CanUseBiometric() bool
	// Authenticate blocks until the prompt ends. When ctx is done first the
	// prompt is cancelled and ctx.Err() is returned.
	Authenticate(ctx context.Context, prompt models.PromptConfig) (models.BiometricResult, error)
}

// AuditService is the append-only audit sink. The Log methods never block on
// storage and never fail; write errors go to the diagnostic log.
type AuditService interface {
	Log(event models.AuditEvent)

	LogHealthDataAccess(userID, action, dataType string, recordCount int, additionalInfo string)
	LogHealthDataModification(userID, action, dataType, recordID, oldValue, newValue string)
	LogAuthentication(userID string, eventType models.EventType, success bool, method, failureReason string)
	LogDataDeletion(userID, action, dataType string)
	LogPrivacySettingsChange(userID, action, details string)
	LogSecuritySettingsChange(userID, action, settingType, oldValue, newValue string)
	LogExternalSync(userID, platform, action string, recordCount int, success bool, errorMessage string)
	LogSensitiveDataAccess(userID, dataType, action, justification string)

	Query(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error)
	// Export flattens all entries of userID into plain records.
	Export(ctx context.Context, userID string) ([]map[string]any, error)
	// PurgeOlderThan deletes entries older than days and returns how many
	// were removed. A non-positive days uses the configured retention.
	PurgeOlderThan(ctx context.Context, days int) (int64, error)

	// Flush waits until every queued entry has been written.
	Flush(ctx context.Context) error
	// Close flushes the queue and stops the writers.
	Close(ctx context.Context) error
}

// PrivacyService owns the consent record of the device user.
type PrivacyService interface {
	Current() models.PrivacySettings
	Subscribe(ctx context.Context) <-chan models.PrivacySettings
	// Update replaces the whole record atomically. A non-empty userID is
	// recorded in the audit log.
	Update(ctx context.Context, settings models.PrivacySettings, userID string) error
	ResetToDefaults(ctx context.Context, userID string) error

	IsDataSharingAllowed(dataType models.DataSharingType) bool
	CanExportData() bool
	RetentionPeriodDays(dataType models.DataRetentionType) int
	ShouldCollectAnalytics() bool
	ShouldSendCrashReports() bool
	CanShareWithThirdParties() bool

	Export() map[string]any
}

// DeletionService purges user data. A started deletion is not cancelled by
// its caller's context.
type DeletionService interface {
	DeleteAllUserData(ctx context.Context, userID string, includeCloud bool) models.DeletionResult
	// DeleteSpecificDataType returns DeletionSuccess or DeletionError only.
	DeleteSpecificDataType(ctx context.Context, userID string, category models.DataCategory) models.DeletionResult
}

// CredentialVerifier checks the non-biometric unlock credential.
type CredentialVerifier interface {
	VerifyManualCredential(ctx context.Context) (bool, error)
}

// PINPrompter asks the user for the PIN. It is supplied by the UI.
type PINPrompter interface {
	PromptPIN(ctx context.Context) (string, error)
}

// PINManager maintains the stored PIN.
type PINManager interface {
	CredentialVerifier
	SetPIN(ctx context.Context, pin string) error
	HasPIN() bool
	ClearPIN(ctx context.Context) error
}

// SecurityService ties the security components together and derives the
// security status.
type SecurityService interface {
	// Start applies first-run defaults, runs a due security check and starts
	// observing lock state and privacy settings until Stop.
	Start(ctx context.Context) error
	Stop()

	OnForeground(ctx context.Context)
	OnBackground()

	// RunSecurityCheck scans for recommended actions when the check interval
	// has elapsed or force is set. It reports whether a scan ran.
	RunSecurityCheck(ctx context.Context, force bool) (bool, error)

	Status() models.SecurityStatus
	Subscribe(ctx context.Context) <-chan models.SecurityStatus
	// Alerts delivers security alerts raised after the call until ctx is
	// done.
	Alerts(ctx context.Context) <-chan models.SecurityAction
	SecurityRecommendations() []models.SecurityRecommendation

	AuthenticateUser(ctx context.Context, prompt models.PromptConfig) models.AuthenticationResult
	// PerformSecureDataOperation audits the start and the outcome of action
	// and returns its error unchanged. A panic in action is audited and
	// re-raised.
	PerformSecureDataOperation(ctx context.Context, userID, operation, dataType string, action func(ctx context.Context) error) error

	// ProtectRecord encrypts the sensitive fields of an entity record.
	ProtectRecord(entity string, record map[string]any) map[string]any
	// RevealRecord decrypts the sensitive fields and audits the access.
	RevealRecord(userID, entity string, record map[string]any) map[string]any

	// BackupSettings exports the lock, biometric and privacy settings.
	BackupSettings(ctx context.Context, userID string) (map[string]any, error)
	// RestoreSettings imports a backup and re-derives the dependent state.
	RestoreSettings(ctx context.Context, userID string, entries map[string]any) error

	// EnrollBiometric stores a biometric enrolment for userID and enables
	// biometric unlock. It fails with ErrBiometricUnavailable when the
	// platform cannot authenticate biometrically.
	EnrollBiometric(ctx context.Context, userID string) error
	RevokeBiometric(ctx context.Context, userID string) error
	BiometricEnrolment(userID string) string
	// FieldKeyCreatedAt is the epoch milliseconds at which the field
	// encryption key was first recorded, or 0.
	FieldKeyCreatedAt() int64
}
