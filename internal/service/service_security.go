// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/internal/watch"
	"github.com/MKhiriev/go-health-guard/models"
)

const (
	actionInitialSetupCompleted = "INITIAL_SECURITY_SETUP_COMPLETED"
	actionInitializationFailed  = "SECURITY_INITIALIZATION_FAILED"
	actionSecurityCheck         = "SECURITY_CHECK_PERFORMED"

	methodBiometric = "BIOMETRIC"
	methodManual    = "MANUAL"
	methodTimeout   = "TIMEOUT"

	thirdPartyAlert = "Third-party integrations enabled. Review data sharing permissions."
	alertBuffer     = 8
)

type securityService struct {
	appLock     AppLockService
	biometric   BiometricService
	audit       AuditService
	privacy     PrivacyService
	credentials CredentialVerifier
	encryptor   *crypto.FieldEncryptor
	prefs       store.Preferences

	checkInterval time.Duration

	status *watch.Value[models.SecurityStatus]
	alerts *alertHub

	// checkMu serialises security scans.
	checkMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now    func() time.Time
	logger *logger.Logger
}

func NewSecurityService(
	appLock AppLockService,
	biometric BiometricService,
	audit AuditService,
	privacy PrivacyService,
	credentials CredentialVerifier,
	encryptor *crypto.FieldEncryptor,
	prefs store.Preferences,
	cfg config.Security,
	log *logger.Logger,
) SecurityService {
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = config.DefaultCheckInterval
	}

	s := &securityService{
		appLock:       appLock,
		biometric:     biometric,
		audit:         audit,
		privacy:       privacy,
		credentials:   credentials,
		encryptor:     encryptor,
		prefs:         prefs,
		checkInterval: cfg.CheckInterval,
		status:        watch.New(models.SecurityStatus{AuditingEnabled: true, SecurityLevel: models.SecurityLevelBasic}),
		alerts:        newAlertHub(),
		now:           time.Now,
		logger:        log,
	}
	s.refreshStatus()

	return s
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func (s *securityService) Start(ctx context.Context) error {
	if err := s.initialize(ctx); err != nil {
		return err
	}
	s.recordFieldKey(ctx)

	if _, err := s.RunSecurityCheck(ctx, false); err != nil {
		s.logger.Err(err).Str("func", "securityService.Start").Msg("initial security check failed")
	}
	s.refreshStatus()

	s.Stop()

	s.mu.Lock()
	obsCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.wg.Add(2)
	s.mu.Unlock()

	go s.observeLock(obsCtx)
	go s.observePrivacy(obsCtx)

	return nil
}

func (s *securityService) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// initialize applies the privacy-first defaults on the very first start.
func (s *securityService) initialize(ctx context.Context) error {
	if s.prefs.GetBool(prefSecurityInitialized, false) {
		return nil
	}

	err := s.privacy.Update(ctx, models.PrivacyFirstSettings(), "")
	if err == nil {
		err = s.prefs.PutBool(ctx, prefSecurityInitialized, true)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "securityService.initialize").Msg("security initialization failed")
		s.audit.LogSecuritySettingsChange("", actionInitializationFailed, "SYSTEM", "", err.Error())
		return fmt.Errorf("initialize security: %w", err)
	}

	s.audit.LogSecuritySettingsChange("", actionInitialSetupCompleted, "SYSTEM", "", "Privacy-first defaults applied")
	return nil
}

func (s *securityService) observeLock(ctx context.Context) {
	defer s.wg.Done()

	first := true
	wasLocked := false
	for state := range s.appLock.Subscribe(ctx) {
		if state.IsLocked && (first || !wasLocked) {
			s.audit.LogAuthentication("", models.EventAppLock, true, methodTimeout, "")
		}
		first = false
		wasLocked = state.IsLocked
		s.refreshStatus()
	}
}

func (s *securityService) observePrivacy(ctx context.Context) {
	defer s.wg.Done()

	for settings := range s.privacy.Subscribe(ctx) {
		s.refreshStatus()
		if settings.ThirdPartyIntegrationsEnabled {
			s.alerts.publish(models.SecurityAction{
				Kind:     models.ActionSecurityAlert,
				Message:  thirdPartyAlert,
				Severity: models.SeverityWarning,
			})
		}
	}
}

func (s *securityService) OnForeground(ctx context.Context) {
	s.appLock.OnForeground()
	if _, err := s.RunSecurityCheck(ctx, true); err != nil {
		s.logger.Err(err).Str("func", "securityService.OnForeground").Msg("security check failed")
	}
	s.refreshStatus()
}

func (s *securityService) OnBackground() {
	s.appLock.OnBackground()
}

// ── status ───────────────────────────────────────────────────────────────────

func (s *securityService) RunSecurityCheck(ctx context.Context, force bool) (bool, error) {
	s.checkMu.Lock()
	defer s.checkMu.Unlock()

	now := s.now()
	last := time.UnixMilli(s.prefs.GetInt64(prefLastSecurityCheck, 0))
	if !force && now.Sub(last) < s.checkInterval {
		return false, nil
	}

	actions := s.scan()
	s.status.Update(func(st models.SecurityStatus) models.SecurityStatus {
		st.PendingSecurityActions = actions
		return st
	})

	if err := s.prefs.PutInt64(ctx, prefLastSecurityCheck, now.UnixMilli()); err != nil {
		return true, fmt.Errorf("persist security check time: %w", err)
	}

	s.audit.LogSecuritySettingsChange("", actionSecurityCheck, "SECURITY_CHECK", "",
		fmt.Sprintf("Found %d security recommendations", len(actions)))
	s.refreshStatus()

	return true, nil
}

func (s *securityService) scan() []models.SecurityAction {
	var actions []models.SecurityAction

	if !s.appLock.IsAppLockEnabled() {
		actions = append(actions, models.SecurityAction{Kind: models.ActionEnableAppLock})
	}
	if s.biometric.CanUseBiometric() && !s.appLock.IsBiometricEnabled() {
		actions = append(actions, models.SecurityAction{Kind: models.ActionSetupBiometric})
	}

	privacy := s.privacy.Current()
	if privacy.DataSharingEnabled || privacy.ThirdPartyIntegrationsEnabled {
		actions = append(actions, models.SecurityAction{Kind: models.ActionReviewPrivacySettings})
	}

	return actions
}

func (s *securityService) refreshStatus() {
	lockEnabled := s.appLock.IsAppLockEnabled()
	biometricEnabled := s.appLock.IsBiometricEnabled()
	biometricAvailable := s.biometric.CanUseBiometric()
	privacy := s.privacy.Current()
	locked := s.appLock.State().IsLocked
	lastCheck := s.prefs.GetInt64(prefLastSecurityCheck, 0)

	level := models.SecurityLevelBasic
	switch {
	case lockEnabled && biometricEnabled && !privacy.DataSharingEnabled:
		level = models.SecurityLevelMaximum
	case lockEnabled:
		level = models.SecurityLevelEnhanced
	}

	s.status.Update(func(st models.SecurityStatus) models.SecurityStatus {
		st.IsAppLocked = locked
		st.BiometricAvailable = biometricAvailable
		st.BiometricEnabled = biometricEnabled
		st.PrivacyControlsActive = !privacy.DataSharingEnabled
		st.AuditingEnabled = true
		st.SecurityLevel = level
		st.LastSecurityCheck = lastCheck
		return st
	})
}

func (s *securityService) Status() models.SecurityStatus {
	return s.status.Get()
}

func (s *securityService) Subscribe(ctx context.Context) <-chan models.SecurityStatus {
	return s.status.Subscribe(ctx)
}

func (s *securityService) Alerts(ctx context.Context) <-chan models.SecurityAction {
	return s.alerts.subscribe(ctx)
}

func (s *securityService) SecurityRecommendations() []models.SecurityRecommendation {
	var recs []models.SecurityRecommendation

	if !s.appLock.IsAppLockEnabled() {
		recs = append(recs, models.SecurityRecommendation{
			Title:       "Enable App Lock",
			Description: "Protect your health data with app lock",
			Priority:    models.PriorityHigh,
			Action:      models.ActionEnableAppLock,
		})
	}
	if s.biometric.CanUseBiometric() && !s.appLock.IsBiometricEnabled() {
		recs = append(recs, models.SecurityRecommendation{
			Title:       "Setup Biometric Authentication",
			Description: "Use fingerprint or face unlock for quick access",
			Priority:    models.PriorityMedium,
			Action:      models.ActionSetupBiometric,
		})
	}

	privacy := s.privacy.Current()
	if privacy.DataSharingEnabled || privacy.ThirdPartyIntegrationsEnabled {
		recs = append(recs, models.SecurityRecommendation{
			Title:       "Review Privacy Settings",
			Description: "Some data sharing features are enabled",
			Priority:    models.PriorityMedium,
			Action:      models.ActionReviewPrivacySettings,
		})
	}

	return recs
}

// ── authentication ───────────────────────────────────────────────────────────

func (s *securityService) AuthenticateUser(ctx context.Context, prompt models.PromptConfig) models.AuthenticationResult {
	if !s.appLock.State().IsLocked {
		return models.AuthenticationResult{Status: models.AuthenticationSuccess}
	}

	if s.appLock.IsBiometricEnabled() && s.biometric.CanUseBiometric() {
		return s.authenticateBiometric(ctx, prompt)
	}
	return s.authenticateManual(ctx)
}

func (s *securityService) authenticateBiometric(ctx context.Context, prompt models.PromptConfig) models.AuthenticationResult {
	res, err := s.biometric.Authenticate(ctx, prompt)
	if err != nil {
		return models.AuthenticationResult{Status: models.AuthenticationCancelled}
	}

	switch res.Status {
	case models.BiometricSuccess:
		s.unlock(ctx)
		s.audit.LogAuthentication("", models.EventAppUnlock, true, methodBiometric, "")
		s.audit.LogAuthentication("", models.EventBiometricAuthSuccess, true, methodBiometric, "")
		return models.AuthenticationResult{Status: models.AuthenticationSuccess}
	case models.BiometricUserCancelled:
		return models.AuthenticationResult{Status: models.AuthenticationCancelled}
	case models.BiometricError:
		s.audit.LogAuthentication("", models.EventBiometricAuthFailure, false, methodBiometric, res.Message)
		return failed(res.Message)
	default:
		return failed("Biometric authentication not available")
	}
}

func (s *securityService) authenticateManual(ctx context.Context) models.AuthenticationResult {
	ok, err := s.credentials.VerifyManualCredential(ctx)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.AuthenticationResult{Status: models.AuthenticationCancelled}
	case err != nil:
		s.audit.LogAuthentication("", models.EventLoginFailure, false, methodManual, err.Error())
		return failed("Authentication failed: " + err.Error())
	case !ok:
		s.audit.LogAuthentication("", models.EventLoginFailure, false, methodManual, "invalid credential")
		return failed("Invalid credential")
	}

	s.unlock(ctx)
	s.audit.LogAuthentication("", models.EventAppUnlock, true, methodManual, "")
	return models.AuthenticationResult{Status: models.AuthenticationSuccess}
}

func (s *securityService) unlock(ctx context.Context) {
	if err := s.appLock.Unlock(ctx); err != nil {
		s.logger.Err(err).Str("func", "securityService.unlock").Msg("unlock not persisted")
	}
}

func failed(message string) models.AuthenticationResult {
	return models.AuthenticationResult{Status: models.AuthenticationFailed, Message: message}
}

// ── data access ──────────────────────────────────────────────────────────────

func (s *securityService) PerformSecureDataOperation(
	ctx context.Context,
	userID, operation, dataType string,
	action func(ctx context.Context) error,
) (err error) {
	s.audit.LogSensitiveDataAccess(userID, dataType, operation+"_STARTED", "")

	defer func() {
		if p := recover(); p != nil {
			s.audit.LogSensitiveDataAccess(userID, dataType, operation+"_FAILED", "")
			panic(p)
		}
	}()

	if err = action(ctx); err != nil {
		s.audit.LogSensitiveDataAccess(userID, dataType, operation+"_FAILED", "")
		return err
	}

	s.audit.LogSensitiveDataAccess(userID, dataType, operation+"_COMPLETED", "")
	return nil
}

func (s *securityService) ProtectRecord(entity string, record map[string]any) map[string]any {
	return s.encryptor.EncryptEntity(entity, record)
}

func (s *securityService) RevealRecord(userID, entity string, record map[string]any) map[string]any {
	s.audit.LogSensitiveDataAccess(userID, entity, "DECRYPT", "")
	return s.encryptor.DecryptEntity(entity, record)
}

// ── alerts ───────────────────────────────────────────────────────────────────

// alertHub fans alerts out to the subscribers present at publish time. A
// subscriber with a full buffer misses the alert.
type alertHub struct {
	mu   sync.Mutex
	subs map[chan models.SecurityAction]struct{}
}

func newAlertHub() *alertHub {
	return &alertHub{subs: make(map[chan models.SecurityAction]struct{})}
}

func (h *alertHub) subscribe(ctx context.Context) <-chan models.SecurityAction {
	ch := make(chan models.SecurityAction, alertBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		close(ch)
		h.mu.Unlock()
	}()

	return ch
}

func (h *alertHub) publish(alert models.SecurityAction) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- alert:
		default:
		}
	}
}
