// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/platform"
	"github.com/MKhiriev/go-health-guard/models"
)

type biometricService struct {
	platform platform.Biometric
	logger   *logger.Logger
}

func NewBiometricService(biometric platform.Biometric, log *logger.Logger) BiometricService {
	return &biometricService{platform: biometric, logger: log}
}

func (b *biometricService) CheckAvailability() models.BiometricResult {
	switch b.platform.CanAuthenticate() {
	case platform.AvailabilitySuccess:
		return models.BiometricResult{Status: models.BiometricSuccess}
	case platform.AvailabilityNoHardware:
		return models.BiometricResult{Status: models.BiometricNotAvailable}
	case platform.AvailabilityHWUnavailable:
		return biometricError("Biometric hardware unavailable")
	case platform.AvailabilityNoneEnrolled:
		return models.BiometricResult{Status: models.BiometricNotEnrolled}
	case platform.AvailabilitySecurityUpdateRequired:
		return biometricError("Security update required")
	case platform.AvailabilityUnsupported:
		return biometricError("Biometric authentication not supported")
	case platform.AvailabilityUnknown:
		return biometricError("Biometric status unknown")
	default:
		return biometricError("Unknown biometric error")
	}
}

func (b *biometricService) CanUseBiometric() bool {
	return b.CheckAvailability().Status == models.BiometricSuccess
}

func (b *biometricService) Authenticate(ctx context.Context, prompt models.PromptConfig) (models.BiometricResult, error) {
	if err := ctx.Err(); err != nil {
		return models.BiometricResult{}, err
	}

	cb := newPromptCallback(b.logger)
	cancel := b.platform.Authenticate(prompt, cb)

	select {
	case res := <-cb.outcome:
		return res, nil
	case <-ctx.Done():
		cb.abandon()
		cancel()
		return models.BiometricResult{}, ctx.Err()
	}
}

// promptCallback turns the callback events of one prompt into a single
// outcome. Events after the first terminal one, or after abandon, are
// dropped.
type promptCallback struct {
	once    sync.Once
	outcome chan models.BiometricResult
	logger  *logger.Logger
}

func newPromptCallback(log *logger.Logger) *promptCallback {
	return &promptCallback{
		outcome: make(chan models.BiometricResult, 1),
		logger:  log,
	}
}

func (c *promptCallback) resolve(res models.BiometricResult) {
	c.once.Do(func() { c.outcome <- res })
}

func (c *promptCallback) abandon() {
	c.once.Do(func() {})
}

func (c *promptCallback) OnSucceeded() {
	c.resolve(models.BiometricResult{Status: models.BiometricSuccess})
}

func (c *promptCallback) OnError(code platform.ErrorCode, message string) {
	c.resolve(mapPromptError(code, message))
}

// OnFailed is a rejected attempt; the prompt stays open for a retry.
func (c *promptCallback) OnFailed() {
	c.logger.Debug().Str("func", "promptCallback.OnFailed").Msg("biometric attempt rejected")
}

func mapPromptError(code platform.ErrorCode, message string) models.BiometricResult {
	switch code {
	case platform.ErrorUserCanceled, platform.ErrorNegativeButton:
		return models.BiometricResult{Status: models.BiometricUserCancelled}
	case platform.ErrorNoBiometrics:
		return models.BiometricResult{Status: models.BiometricNotEnrolled}
	case platform.ErrorHWNotPresent, platform.ErrorHWUnavailable:
		return models.BiometricResult{Status: models.BiometricNotAvailable}
	default:
		return biometricError(message)
	}
}

func biometricError(message string) models.BiometricResult {
	return models.BiometricResult{Status: models.BiometricError, Message: message}
}
