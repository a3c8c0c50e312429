// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Preference keys owned by the services.
const (
	prefAppLockEnabled     = "app_lock_enabled"
	prefLockTimeoutMinutes = "lock_timeout_minutes"
	prefBiometricEnabled   = "biometric_enabled"
	prefLastUnlockTime     = "last_unlock_time"

	prefSecurityInitialized = "security_initialized"
	prefLastSecurityCheck   = "last_security_check"

	prefManualPINHash = "manual_pin_hash"
	prefManualPINSalt = "manual_pin_salt"

	prefDataSharingEnabled             = "data_sharing_enabled"
	prefAnalyticsEnabled               = "analytics_enabled"
	prefCrashReportingEnabled          = "crash_reporting_enabled"
	prefHealthDataSharingEnabled       = "health_data_sharing_enabled"
	prefMealDataSharingEnabled         = "meal_data_sharing_enabled"
	prefRecipeSharingEnabled           = "recipe_sharing_enabled"
	prefSocialFeaturesEnabled          = "social_features_enabled"
	prefLocationSharingEnabled         = "location_sharing_enabled"
	prefThirdPartyIntegrationsEnabled  = "third_party_integrations_enabled"
	prefDataExportAllowed              = "data_export_allowed"
	prefMarketingCommunicationsEnabled = "marketing_communications_enabled"
	prefPersonalizedAdsEnabled         = "personalized_ads_enabled"
)
