// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-guard/models"
)

func TestBuildSelectAuditLogsQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query, args, err := buildSelectAuditLogsQuery(models.AuditFilter{})
		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY timestamp DESC")
		assert.Contains(t, query, "LIMIT 100")
		assert.Empty(t, args)
	})

	t.Run("all conditions", func(t *testing.T) {
		from := time.UnixMilli(1000)
		to := time.UnixMilli(2000)
		query, args, err := buildSelectAuditLogsQuery(models.AuditFilter{
			UserID:       "u",
			EventType:    models.EventAppLock,
			ResourceType: models.ResourceAppSession,
			ResourceID:   "r",
			From:         from,
			To:           to,
			Limit:        5,
		})
		require.NoError(t, err)
		assert.Contains(t, query, "user_id = ?")
		assert.Contains(t, query, "event_type = ?")
		assert.Contains(t, query, "timestamp >= ?")
		assert.Contains(t, query, "timestamp <= ?")
		assert.Contains(t, query, "LIMIT 5")
		assert.Equal(t, []any{"u", "APP_LOCK", models.ResourceAppSession, "r", int64(1000), int64(2000)}, args)
	})
}

func TestBuildSelectAuditLogsQuery_Unlimited(t *testing.T) {
	query, _, err := buildSelectAuditLogsQuery(models.AuditFilter{UserID: "u", Limit: models.NoAuditQueryLimit})
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}

func TestBuildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteAuditLogsBeforeQuery(time.UnixMilli(5))
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM audit_logs WHERE timestamp < ?", query)
	assert.Equal(t, []any{int64(5)}, args)

	query, args, err = buildDeleteUserRowsQuery("meals", "u1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM meals WHERE user_id = ?", query)
	assert.Equal(t, []any{"u1"}, args)

	query, _, err = buildDeleteUserQuery("u1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE id = ?", query)
}
