// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-health-guard/models"
)

// secure preferences
const (
	selectKeysetQuery = `SELECT nonce, keyset FROM secure_prefs_keyset WHERE id = 1`

	insertKeysetQuery = `INSERT INTO secure_prefs_keyset (id, nonce, keyset, created_at) VALUES (1, ?, ?, ?)`

	selectAllPrefsQuery = `SELECT name_cipher, value_cipher FROM secure_prefs`

	upsertPrefQuery = `
		INSERT INTO secure_prefs (name_cipher, value_cipher) VALUES (?, ?)
		ON CONFLICT (name_cipher) DO UPDATE SET value_cipher = excluded.value_cipher`

	deletePrefQuery = `DELETE FROM secure_prefs WHERE name_cipher = ?`

	deleteAllPrefsQuery = `DELETE FROM secure_prefs`
)

// audit logs
const (
	insertAuditLogQuery = `
		INSERT INTO audit_logs (id, user_id, event_type, action, resource_type, resource_id,
			timestamp, device_info, user_agent, session_id, additional_info)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

// users
const (
	selectAllUserIDsQuery = `SELECT id FROM users ORDER BY id`
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectAuditLogsQuery(filter models.AuditFilter) (string, []any, error) {
	query := sqlite.
		Select("id", "user_id", "event_type", "action", "resource_type", "resource_id",
			"timestamp", "device_info", "user_agent", "session_id", "additional_info").
		From("audit_logs")

	if filter.UserID != "" {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.EventType != "" {
		query = query.Where(sq.Eq{"event_type": string(filter.EventType)})
	}
	if filter.ResourceType != "" {
		query = query.Where(sq.Eq{"resource_type": filter.ResourceType})
	}
	if filter.ResourceID != "" {
		query = query.Where(sq.Eq{"resource_id": filter.ResourceID})
	}
	if !filter.From.IsZero() {
		query = query.Where(sq.GtOrEq{"timestamp": filter.From.UnixMilli()})
	}
	if !filter.To.IsZero() {
		query = query.Where(sq.LtOrEq{"timestamp": filter.To.UnixMilli()})
	}

	query = query.OrderBy("timestamp DESC", "id DESC")
	switch {
	case filter.Limit == 0:
		query = query.Limit(models.DefaultAuditQueryLimit)
	case filter.Limit > 0:
		query = query.Limit(uint64(filter.Limit))
	}

	return query.ToSql()
}

func buildDeleteAuditLogsBeforeQuery(cutoff time.Time) (string, []any, error) {
	return sqlite.Delete("audit_logs").Where(sq.Lt{"timestamp": cutoff.UnixMilli()}).ToSql()
}

func buildDeleteUserRowsQuery(table, userID string) (string, []any, error) {
	return sqlite.Delete(table).Where(sq.Eq{"user_id": userID}).ToSql()
}

func buildDeleteUserQuery(userID string) (string, []any, error) {
	return sqlite.Delete("users").Where(sq.Eq{"id": userID}).ToSql()
}
