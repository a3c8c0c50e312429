// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PrivacySettings is the full consent record of the device user. It is always
// replaced wholesale, never patched field by field.
type PrivacySettings struct {
	DataSharingEnabled             bool `json:"dataSharingEnabled"`
	AnalyticsEnabled               bool `json:"analyticsEnabled"`
	CrashReportingEnabled          bool `json:"crashReportingEnabled"`
	HealthDataSharingEnabled       bool `json:"healthDataSharingEnabled"`
	MealDataSharingEnabled         bool `json:"mealDataSharingEnabled"`
	RecipeSharingEnabled           bool `json:"recipeSharingEnabled"`
	SocialFeaturesEnabled          bool `json:"socialFeaturesEnabled"`
	LocationSharingEnabled         bool `json:"locationSharingEnabled"`
	ThirdPartyIntegrationsEnabled  bool `json:"thirdPartyIntegrationsEnabled"`
	DataExportAllowed              bool `json:"dataExportAllowed"`
	MarketingCommunicationsEnabled bool `json:"marketingCommunicationsEnabled"`
	PersonalizedAdsEnabled         bool `json:"personalizedAdsEnabled"`
}

// DefaultPrivacySettings returns the settings used when nothing was stored yet.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		CrashReportingEnabled: true,
		RecipeSharingEnabled:  true,
		DataExportAllowed:     true,
	}
}

// PrivacyFirstSettings returns the settings applied on the very first start
// of the application.
func PrivacyFirstSettings() PrivacySettings {
	return PrivacySettings{
		CrashReportingEnabled: true,
		DataExportAllowed:     true,
	}
}

// DataSharingType is a category of data whose sharing is gated by consent.
type DataSharingType string

const (
	SharingHealthData      DataSharingType = "HEALTH_DATA"
	SharingMealData        DataSharingType = "MEAL_DATA"
	SharingRecipes         DataSharingType = "RECIPES"
	SharingAnalytics       DataSharingType = "ANALYTICS"
	SharingCrashReports    DataSharingType = "CRASH_REPORTS"
	SharingLocation        DataSharingType = "LOCATION"
	SharingSocial          DataSharingType = "SOCIAL"
	SharingThirdParty      DataSharingType = "THIRD_PARTY"
	SharingMarketing       DataSharingType = "MARKETING"
	SharingPersonalizedAds DataSharingType = "PERSONALIZED_ADS"
)

// DataRetentionType is a category of data with a fixed retention policy.
type DataRetentionType string

const (
	RetentionHealthMetrics DataRetentionType = "HEALTH_METRICS"
	RetentionMealLogs      DataRetentionType = "MEAL_LOGS"
	RetentionRecipes       DataRetentionType = "RECIPES"
	RetentionAuditLogs     DataRetentionType = "AUDIT_LOGS"
	RetentionCrashReports  DataRetentionType = "CRASH_REPORTS"
	RetentionAnalytics     DataRetentionType = "ANALYTICS"
)

// RetainIndefinitely is returned as retention period for data kept forever.
const RetainIndefinitely = -1
