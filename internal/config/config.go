// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the security
// core. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings used in audit records.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local database, the per-user file
	// layout and the key directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the settings of the managed backend used for remote
	// account deletion.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Security holds audit and security-check policy values.
	Security Security `envPrefix:"SECURITY_"`

	// Workers holds tick intervals of the background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Name is the product name used in the audit user agent.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the diagnostic log. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the per-user file layout roots.
	Files Files `envPrefix:"FILES_"`

	// Keys holds the key provider settings.
	Keys Keys `envPrefix:"KEYS_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:guard.db?_foreign_keys=on").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds the roots of the per-user directory layout
// (cache/user_<id>/, files/user_<id>/, files/profile_images/).
type Files struct {
	// CacheDir is the application cache root.
	// Env: STORAGE_FILES_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`

	// FilesDir is the application files root.
	// Env: STORAGE_FILES_FILES_DIR
	FilesDir string `env:"FILES_DIR"`
}

// Keys holds settings of the software key provider.
type Keys struct {
	// Dir is where wrapped key files are stored. Empty keeps keys in memory
	// only, which is meant for tests.
	// Env: STORAGE_KEYS_DIR
	Dir string `env:"DIR"`
}

// Adapter holds the managed backend settings.
type Adapter struct {
	// BaseURL is the backend root URL. Empty disables remote deletion.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent in the apikey header.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// AccessToken is the bearer token of the signed-in user.
	// Env: ADAPTER_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Security holds the audit and scan policy.
type Security struct {
	// AuditRetentionDays is the age after which audit entries are purged.
	// Env: SECURITY_AUDIT_RETENTION_DAYS
	AuditRetentionDays int `env:"AUDIT_RETENTION_DAYS"`

	// AuditQueueSize is the capacity of the asynchronous audit queue.
	// Env: SECURITY_AUDIT_QUEUE_SIZE
	AuditQueueSize int `env:"AUDIT_QUEUE_SIZE"`

	// AuditWorkers is the number of goroutines draining the audit queue.
	// Env: SECURITY_AUDIT_WORKERS
	AuditWorkers int `env:"AUDIT_WORKERS"`

	// CheckInterval is the minimum time between two timer-driven security
	// scans.
	// Env: SECURITY_CHECK_INTERVAL
	CheckInterval time.Duration `env:"CHECK_INTERVAL"`
}

// Workers holds background worker tick intervals.
type Workers struct {
	// SecurityCheckTick is how often the security check worker wakes up to
	// test whether a scan is due.
	// Env: WORKERS_SECURITY_CHECK_TICK
	SecurityCheckTick time.Duration `env:"SECURITY_CHECK_TICK"`

	// AuditRetentionInterval is how often the audit purge runs.
	// Env: WORKERS_AUDIT_RETENTION_INTERVAL
	AuditRetentionInterval time.Duration `env:"AUDIT_RETENTION_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
