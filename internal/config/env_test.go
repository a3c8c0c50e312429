// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAME":     "WellTrack",
		"APP_VERSION":  "2.1.0",
		"APP_LOG_FILE": "/var/log/guard.log",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_ / KEYS_
		"STORAGE_DB_DSN":          "file:test.db",
		"STORAGE_FILES_CACHE_DIR": "/data/cache",
		"STORAGE_FILES_FILES_DIR": "/data/files",
		"STORAGE_KEYS_DIR":        "/data/keys",

		"ADAPTER_BASE_URL":        "https://backend.example",
		"ADAPTER_API_KEY":         "anon-key",
		"ADAPTER_ACCESS_TOKEN":    "token",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"SECURITY_AUDIT_RETENTION_DAYS": "365",
		"SECURITY_AUDIT_QUEUE_SIZE":     "64",
		"SECURITY_AUDIT_WORKERS":        "3",
		"SECURITY_CHECK_INTERVAL":       "12h",

		"WORKERS_SECURITY_CHECK_TICK":      "30m",
		"WORKERS_AUDIT_RETENTION_INTERVAL": "6h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "WellTrack", cfg.App.Name)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "/var/log/guard.log", cfg.App.LogFile)

	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/cache", cfg.Storage.Files.CacheDir)
	assert.Equal(t, "/data/files", cfg.Storage.Files.FilesDir)
	assert.Equal(t, "/data/keys", cfg.Storage.Keys.Dir)

	assert.Equal(t, "https://backend.example", cfg.Adapter.BaseURL)
	assert.Equal(t, "anon-key", cfg.Adapter.APIKey)
	assert.Equal(t, "token", cfg.Adapter.AccessToken)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 365, cfg.Security.AuditRetentionDays)
	assert.Equal(t, 64, cfg.Security.AuditQueueSize)
	assert.Equal(t, 3, cfg.Security.AuditWorkers)
	assert.Equal(t, 12*time.Hour, cfg.Security.CheckInterval)

	assert.Equal(t, 30*time.Minute, cfg.Workers.SecurityCheckTick)
	assert.Equal(t, 6*time.Hour, cfg.Workers.AuditRetentionInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":    "1.0.0",
		"STORAGE_DB_DSN": "file:partial.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Empty(t, cfg.App.Name)
	assert.Equal(t, "file:partial.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Security.AuditRetentionDays)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read environment")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SECURITY_AUDIT_WORKERS": "two",
	})

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

func TestParseEnviron_NamespacedWins(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnviron(cfg, map[string]string{
		"APP_NAME":                         "shared-host-app",
		"APP_VERSION":                      "1.0.0",
		"WELLTRACK_APP_NAME":               "WellTrack",
		"WELLTRACK_SECURITY_AUDIT_WORKERS": "4",
	})

	require.NoError(t, err)
	assert.Equal(t, "WellTrack", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version, "голое имя остаётся, если нет варианта с префиксом")
	assert.Equal(t, 4, cfg.Security.AuditWorkers)
}

func TestParseEnviron_InvalidNamespacedValue(t *testing.T) {
	err := parseEnviron(&StructuredConfig{}, map[string]string{
		"WELLTRACK_ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read WELLTRACK_ environment")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_NAME", "APP_VERSION", "APP_LOG_FILE",
		"STORAGE_DB_DSN", "STORAGE_FILES_CACHE_DIR", "STORAGE_FILES_FILES_DIR", "STORAGE_KEYS_DIR",
		"ADAPTER_BASE_URL", "ADAPTER_API_KEY", "ADAPTER_ACCESS_TOKEN", "ADAPTER_REQUEST_TIMEOUT",
		"SECURITY_AUDIT_RETENTION_DAYS", "SECURITY_AUDIT_QUEUE_SIZE", "SECURITY_AUDIT_WORKERS",
		"SECURITY_CHECK_INTERVAL",
		"WORKERS_SECURITY_CHECK_TICK", "WORKERS_AUDIT_RETENTION_INTERVAL",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value after the test
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
