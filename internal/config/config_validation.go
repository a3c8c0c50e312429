// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Files.CacheDir == "" || cfg.Storage.Files.FilesDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Security.AuditRetentionDays <= 0 || cfg.Security.AuditWorkers <= 0 ||
		cfg.Security.AuditQueueSize <= 0 || cfg.Security.CheckInterval <= 0 {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Workers.SecurityCheckTick <= 0 || cfg.Workers.AuditRetentionInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
