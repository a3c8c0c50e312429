// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/adapter"
	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/internal/platform"
	"github.com/MKhiriev/go-health-guard/internal/store"
	"github.com/MKhiriev/go-health-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Полная сборка сервисов поверх настоящего SQLite во временном каталоге.
func TestNewServices_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App: config.App{Name: "guard", Version: "test"},
		Storage: config.Storage{
			DB: config.DB{DSN: "file:" + filepath.Join(dir, "guard.db") + "?_foreign_keys=on"},
			Files: config.Files{
				CacheDir: filepath.Join(dir, "cache"),
				FilesDir: filepath.Join(dir, "files"),
			},
		},
		Security: config.Security{
			AuditRetentionDays: 30,
			AuditQueueSize:     8,
			AuditWorkers:       1,
			CheckInterval:      24 * time.Hour,
		},
	}

	keys, err := crypto.NewSoftwareKeyProvider(filepath.Join(dir, "keys"), logger.Nop())
	require.NoError(t, err)
	storages, err := store.NewStorages(ctx, cfg.Storage, keys, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	svcs := NewServices(storages, adapter.NewDisabledRemoteStore(), Platform{
		Biometric: platform.NewUnsupportedBiometric(),
		Keys:      keys,
	}, cfg, logger.Nop())
	t.Cleanup(func() { _ = svcs.Audit.Close(context.Background()) })

	require.NoError(t, svcs.Security.Start(ctx))
	defer svcs.Security.Stop()

	assert.Equal(t, models.PrivacyFirstSettings(), svcs.Privacy.Current())
	assert.Equal(t, models.SecurityLevelBasic, svcs.Security.Status().SecurityLevel)

	// пользовательские файлы и ключи
	userCache := filepath.Join(cfg.Storage.Files.CacheDir, "user_u1")
	require.NoError(t, os.MkdirAll(userCache, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(userCache, "blob"), []byte("secret"), 0o600))
	require.NoError(t, storages.Preferences.PutString(ctx, store.AuthTokenKey("u1"), "token"))
	require.NoError(t, storages.Preferences.PutString(ctx, store.BiometricKeyKey("u1"), "enrolment"))
	fieldKeyCreated := svcs.Security.FieldKeyCreatedAt()
	assert.NotZero(t, fieldKeyCreated)

	res := svcs.Deletion.DeleteAllUserData(ctx, "u1", true)
	assert.Equal(t, models.DeletionSuccess{}, res)
	assert.NoDirExists(t, userCache)
	assert.False(t, storages.Preferences.Contains(store.AuthTokenKey("u1")))
	assert.False(t, storages.Preferences.Contains(store.BiometricKeyKey("u1")))
	assert.Equal(t, fieldKeyCreated, svcs.Security.FieldKeyCreatedAt(), "запись о ключе шифрования не принадлежит пользователю")

	require.NoError(t, svcs.Audit.Flush(ctx))
	entries, err := svcs.Audit.Query(ctx, models.AuditFilter{UserID: "u1", EventType: models.EventDataDeletion, Limit: models.NoAuditQueryLimit})
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	exported, err := svcs.Audit.Export(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, exported, len(entries))
}
