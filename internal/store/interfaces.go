// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Preferences is the encrypted key-value store for settings and secrets.
// Reads are served from a decrypted in-memory cache and never fail: a missing
// key or a value of another type yields the caller default. Every write is
// committed to disk before it returns.
type Preferences interface {
	PutBool(ctx context.Context, key string, value bool) error
	PutInt(ctx context.Context, key string, value int) error
	PutInt64(ctx context.Context, key string, value int64) error
	PutFloat(ctx context.Context, key string, value float64) error
	PutString(ctx context.Context, key string, value string) error

	// PutAll writes all entries in one transaction. Values must be bool,
	// int, int64, float64 or string.
	PutAll(ctx context.Context, entries map[string]any) error

	GetBool(key string, def bool) bool
	GetInt(key string, def int) int
	GetInt64(key string, def int64) int64
	GetFloat(key string, def float64) float64
	GetString(key string, def string) string

	Contains(key string) bool
	Keys() []string

	Remove(ctx context.Context, key string) error
	// RemoveKeysWithPrefix deletes every key starting with prefix and
	// returns how many were removed.
	RemoveKeysWithPrefix(ctx context.Context, prefix string) (int, error)
	ClearAll(ctx context.Context) error

	// ExportKeysContaining returns all entries whose key contains substring.
	ExportKeysContaining(substring string) map[string]any
	// ImportEntries writes supported entries and skips the others.
	ImportEntries(ctx context.Context, entries map[string]any) error
}

// AuditLogRepository persists audit entries.
type AuditLogRepository interface {
	Insert(ctx context.Context, entry models.AuditLogEntry) error
	// Query returns entries matching filter, newest first.
	Query(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error)
	// DeleteOlderThan removes entries with timestamp strictly before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// UserDataRepository is the part of the application database the deletion
// flow needs.
type UserDataRepository interface {
	// DeleteAllUserData removes every row owned by userID and the user row
	// itself in a single transaction.
	DeleteAllUserData(ctx context.Context, userID string) error
	// DeleteCategory removes the rows of one data category owned by userID.
	DeleteCategory(ctx context.Context, userID string, category models.DataCategory) error
	// GetAllUsers returns the ids of all users stored on the device.
	GetAllUsers(ctx context.Context) ([]string, error)
}

// UserFileStore owns the per-user directory layout on local storage.
type UserFileStore interface {
	// DeleteUserFiles securely deletes cache/user_<id>/, files/user_<id>/ and
	// every entry of files/profile_images/ whose name contains the id.
	DeleteUserFiles(ctx context.Context, userID string) error
}
