// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/internal/watch"
	"github.com/MKhiriev/go-health-guard/models"
)

const (
	actionPrivacyUpdated = "PRIVACY_SETTINGS_UPDATED"
	actionPrivacyReset   = "PRIVACY_SETTINGS_RESET_TO_DEFAULTS"
)

// retention periods in days
var retentionDays = map[models.DataRetentionType]int{
	models.RetentionHealthMetrics: 2555,
	models.RetentionMealLogs:      730,
	models.RetentionRecipes:       models.RetainIndefinitely,
	models.RetentionAuditLogs:     1095,
	models.RetentionCrashReports:  90,
	models.RetentionAnalytics:     365,
}

type privacyService struct {
	prefs store.Preferences
	audit AuditService

	// mu keeps the persisted record and settings in the same order.
	mu       sync.Mutex
	settings *watch.Value[models.PrivacySettings]

	now    func() time.Time
	logger *logger.Logger
}

// NewPrivacyService loads the stored consent record, falling back to
// [models.DefaultPrivacySettings] per missing flag.
func NewPrivacyService(prefs store.Preferences, audit AuditService, log *logger.Logger) PrivacyService {
	return &privacyService{
		prefs:    prefs,
		audit:    audit,
		settings: watch.New(loadPrivacySettings(prefs)),
		now:      time.Now,
		logger:   log,
	}
}

func loadPrivacySettings(prefs store.Preferences) models.PrivacySettings {
	def := models.DefaultPrivacySettings()

	return models.PrivacySettings{
		DataSharingEnabled:             prefs.GetBool(prefDataSharingEnabled, def.DataSharingEnabled),
		AnalyticsEnabled:               prefs.GetBool(prefAnalyticsEnabled, def.AnalyticsEnabled),
		CrashReportingEnabled:          prefs.GetBool(prefCrashReportingEnabled, def.CrashReportingEnabled),
		HealthDataSharingEnabled:       prefs.GetBool(prefHealthDataSharingEnabled, def.HealthDataSharingEnabled),
		MealDataSharingEnabled:         prefs.GetBool(prefMealDataSharingEnabled, def.MealDataSharingEnabled),
		RecipeSharingEnabled:           prefs.GetBool(prefRecipeSharingEnabled, def.RecipeSharingEnabled),
		SocialFeaturesEnabled:          prefs.GetBool(prefSocialFeaturesEnabled, def.SocialFeaturesEnabled),
		LocationSharingEnabled:         prefs.GetBool(prefLocationSharingEnabled, def.LocationSharingEnabled),
		ThirdPartyIntegrationsEnabled:  prefs.GetBool(prefThirdPartyIntegrationsEnabled, def.ThirdPartyIntegrationsEnabled),
		DataExportAllowed:              prefs.GetBool(prefDataExportAllowed, def.DataExportAllowed),
		MarketingCommunicationsEnabled: prefs.GetBool(prefMarketingCommunicationsEnabled, def.MarketingCommunicationsEnabled),
		PersonalizedAdsEnabled:         prefs.GetBool(prefPersonalizedAdsEnabled, def.PersonalizedAdsEnabled),
	}
}

func privacyEntries(s models.PrivacySettings) map[string]any {
	return map[string]any{
		prefDataSharingEnabled:             s.DataSharingEnabled,
		prefAnalyticsEnabled:               s.AnalyticsEnabled,
		prefCrashReportingEnabled:          s.CrashReportingEnabled,
		prefHealthDataSharingEnabled:       s.HealthDataSharingEnabled,
		prefMealDataSharingEnabled:         s.MealDataSharingEnabled,
		prefRecipeSharingEnabled:           s.RecipeSharingEnabled,
		prefSocialFeaturesEnabled:          s.SocialFeaturesEnabled,
		prefLocationSharingEnabled:         s.LocationSharingEnabled,
		prefThirdPartyIntegrationsEnabled:  s.ThirdPartyIntegrationsEnabled,
		prefDataExportAllowed:              s.DataExportAllowed,
		prefMarketingCommunicationsEnabled: s.MarketingCommunicationsEnabled,
		prefPersonalizedAdsEnabled:         s.PersonalizedAdsEnabled,
	}
}

func (p *privacyService) Current() models.PrivacySettings {
	return p.settings.Get()
}

func (p *privacyService) Subscribe(ctx context.Context) <-chan models.PrivacySettings {
	return p.settings.Subscribe(ctx)
}

func (p *privacyService) Update(ctx context.Context, settings models.PrivacySettings, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.prefs.PutAll(ctx, privacyEntries(settings)); err != nil {
		p.logger.Err(err).Str("func", "privacyService.Update").Msg("failed to persist privacy settings")
		return fmt.Errorf("persist privacy settings: %w", err)
	}

	p.settings.Set(settings)

	if userID != "" {
		p.audit.LogPrivacySettingsChange(userID, actionPrivacyUpdated, fmt.Sprintf("%+v", settings))
	}
	return nil
}

func (p *privacyService) ResetToDefaults(ctx context.Context, userID string) error {
	if err := p.Update(ctx, models.DefaultPrivacySettings(), userID); err != nil {
		return err
	}

	if userID != "" {
		p.audit.LogPrivacySettingsChange(userID, actionPrivacyReset, "")
	}
	return nil
}

func (p *privacyService) IsDataSharingAllowed(dataType models.DataSharingType) bool {
	s := p.settings.Get()

	switch dataType {
	case models.SharingHealthData:
		return s.DataSharingEnabled && s.HealthDataSharingEnabled
	case models.SharingMealData:
		return s.DataSharingEnabled && s.MealDataSharingEnabled
	case models.SharingRecipes:
		return s.RecipeSharingEnabled
	case models.SharingAnalytics:
		return s.AnalyticsEnabled
	case models.SharingCrashReports:
		return s.CrashReportingEnabled
	case models.SharingLocation:
		return s.LocationSharingEnabled
	case models.SharingSocial:
		return s.SocialFeaturesEnabled
	case models.SharingThirdParty:
		return s.ThirdPartyIntegrationsEnabled
	case models.SharingMarketing:
		return s.MarketingCommunicationsEnabled
	case models.SharingPersonalizedAds:
		return s.PersonalizedAdsEnabled
	default:
		return false
	}
}

func (p *privacyService) CanExportData() bool {
	return p.settings.Get().DataExportAllowed
}

// RetentionPeriodDays returns 0 for unknown types.
func (p *privacyService) RetentionPeriodDays(dataType models.DataRetentionType) int {
	return retentionDays[dataType]
}

func (p *privacyService) ShouldCollectAnalytics() bool {
	return p.settings.Get().AnalyticsEnabled
}

func (p *privacyService) ShouldSendCrashReports() bool {
	return p.settings.Get().CrashReportingEnabled
}

func (p *privacyService) CanShareWithThirdParties() bool {
	return p.settings.Get().ThirdPartyIntegrationsEnabled
}

func (p *privacyService) Export() map[string]any {
	s := p.settings.Get()

	return map[string]any{
		"dataSharingEnabled":             s.DataSharingEnabled,
		"analyticsEnabled":               s.AnalyticsEnabled,
		"crashReportingEnabled":          s.CrashReportingEnabled,
		"healthDataSharingEnabled":       s.HealthDataSharingEnabled,
		"mealDataSharingEnabled":         s.MealDataSharingEnabled,
		"recipeSharingEnabled":           s.RecipeSharingEnabled,
		"socialFeaturesEnabled":          s.SocialFeaturesEnabled,
		"locationSharingEnabled":         s.LocationSharingEnabled,
		"thirdPartyIntegrationsEnabled":  s.ThirdPartyIntegrationsEnabled,
		"dataExportAllowed":              s.DataExportAllowed,
		"marketingCommunicationsEnabled": s.MarketingCommunicationsEnabled,
		"personalizedAdsEnabled":         s.PersonalizedAdsEnabled,
		"exportedAt":                     p.now().UnixMilli(),
	}
}
