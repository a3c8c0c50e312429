// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-health-guard/internal/adapter"
	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/platform"
	"github.com/MKhiriev/go-health-guard/internal/store"
)

// Services is the wired security core.
type Services struct {
	AppLock     AppLockService
	Biometric   BiometricService
	Audit       AuditService
	Privacy     PrivacyService
	Deletion    DeletionService
	Credentials PINManager
	Security    SecurityService
}

// Platform groups the host capabilities supplied by the embedding
// application.
type Platform struct {
	Biometric platform.Biometric
	Keys      crypto.KeyProvider
	Prompter  PINPrompter
}

func NewServices(storages *store.Storages, remote adapter.RemoteStore, host Platform, cfg config.StructuredConfig, log *logger.Logger) *Services {
	appLock := NewAppLockService(storages.Preferences, log.WithComponent("app_lock"))
	audit := NewAuditService(storages.AuditLogs, cfg.Security, cfg.App, appLock.SessionID, log.WithComponent("audit"))
	biometric := NewBiometricService(host.Biometric, log.WithComponent("biometric"))
	privacy := NewPrivacyService(storages.Preferences, audit, log.WithComponent("privacy"))
	credentials := NewPINCredentialService(storages.Preferences, crypto.NewPINHasher(), host.Prompter, log.WithComponent("credentials"))
	deletion := NewDeletionService(storages.UserData, remote, storages.Files, storages.Preferences, audit, log.WithComponent("deletion"))

	security := NewSecurityService(
		appLock,
		biometric,
		audit,
		privacy,
		credentials,
		crypto.NewFieldEncryptor(host.Keys, log.WithComponent("field_encryption")),
		storages.Preferences,
		cfg.Security,
		log.WithComponent("security"),
	)

	return &Services{
		AppLock:     appLock,
		Biometric:   biometric,
		Audit:       audit,
		Privacy:     privacy,
		Deletion:    deletion,
		Credentials: credentials,
		Security:    security,
	}
}
