// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SecurityLevel summarises how strongly the device data is protected.
type SecurityLevel string

const (
	SecurityLevelBasic    SecurityLevel = "BASIC"
	SecurityLevelEnhanced SecurityLevel = "ENHANCED"
	SecurityLevelMaximum  SecurityLevel = "MAXIMUM"
)

// SecurityActionKind is the kind of a pending security action.
type SecurityActionKind string

const (
	ActionEnableAppLock          SecurityActionKind = "ENABLE_APP_LOCK"
	ActionSetupBiometric         SecurityActionKind = "SETUP_BIOMETRIC"
	ActionReviewPrivacySettings  SecurityActionKind = "REVIEW_PRIVACY_SETTINGS"
	ActionUpdateSecuritySettings SecurityActionKind = "UPDATE_SECURITY_SETTINGS"
	ActionSecurityAlert          SecurityActionKind = "SECURITY_ALERT"
)

// AlertSeverity is attached to ActionSecurityAlert actions.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "INFO"
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// SecurityAction is a suggestion produced by the security scan. Message and
// Severity are only used by ActionSecurityAlert.
type SecurityAction struct {
	Kind     SecurityActionKind
	Message  string
	Severity AlertSeverity
}

// SecurityStatus is a derived snapshot recomputed whenever lock state or
// privacy settings change. It is never persisted.
type SecurityStatus struct {
	IsAppLocked            bool
	BiometricAvailable     bool
	BiometricEnabled       bool
	PrivacyControlsActive  bool
	AuditingEnabled        bool
	SecurityLevel          SecurityLevel
	LastSecurityCheck      int64
	PendingSecurityActions []SecurityAction
}

// RecommendationPriority orders security recommendations.
type RecommendationPriority string

const (
	PriorityLow      RecommendationPriority = "LOW"
	PriorityMedium   RecommendationPriority = "MEDIUM"
	PriorityHigh     RecommendationPriority = "HIGH"
	PriorityCritical RecommendationPriority = "CRITICAL"
)

// SecurityRecommendation is a user-facing hint derived from current settings.
type SecurityRecommendation struct {
	Title       string
	Description string
	Priority    RecommendationPriority
	Action      SecurityActionKind
}
