// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultAppName                = "WellTrack"
	DefaultDSN                    = "file:welltrack.db?_foreign_keys=on&_journal_mode=WAL&_synchronous=FULL"
	DefaultCacheDir               = "cache"
	DefaultFilesDir               = "files"
	DefaultKeysDir                = "keys"
	DefaultRequestTimeout         = 15 * time.Second
	DefaultAuditRetentionDays     = 1095
	DefaultAuditQueueSize         = 256
	DefaultAuditWorkers           = 2
	DefaultCheckInterval          = 24 * time.Hour
	DefaultSecurityCheckTick      = time.Hour
	DefaultAuditRetentionInterval = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Name: DefaultAppName},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{CacheDir: DefaultCacheDir, FilesDir: DefaultFilesDir},
			Keys:  Keys{Dir: DefaultKeysDir},
		},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Security: Security{
			AuditRetentionDays: DefaultAuditRetentionDays,
			AuditQueueSize:     DefaultAuditQueueSize,
			AuditWorkers:       DefaultAuditWorkers,
			CheckInterval:      DefaultCheckInterval,
		},
		Workers: Workers{
			SecurityCheckTick:      DefaultSecurityCheckTick,
			AuditRetentionInterval: DefaultAuditRetentionInterval,
		},
	}
}
