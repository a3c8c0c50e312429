// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/models"
)

func newTestAuditRepo(t *testing.T) AuditLogRepository {
	t.Helper()
	return NewAuditLogRepository(newTestDB(t), logger.Nop())
}

func auditEntry(id, userID string, eventType models.EventType, ts time.Time) models.AuditLogEntry {
	return models.AuditLogEntry{
		ID:        id,
		UserID:    userID,
		EventType: eventType,
		Action:    "ACTION_" + id,
		Timestamp: ts,
	}
}

func TestAuditLogRepository_InsertAndQuery(t *testing.T) {
	repo := newTestAuditRepo(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)

	full := models.AuditLogEntry{
		ID:             "a",
		UserID:         "u1",
		EventType:      models.EventLoginSuccess,
		Action:         "LOGIN",
		ResourceType:   models.ResourceAuthentication,
		ResourceID:     "r1",
		Timestamp:      base,
		DeviceInfo:     "linux/amd64",
		UserAgent:      "WellTrack Go/1.0",
		SessionID:      "sess_1",
		AdditionalInfo: "method: PIN",
	}
	require.NoError(t, repo.Insert(ctx, full))
	require.NoError(t, repo.Insert(ctx, auditEntry("b", "u1", models.EventAppLock, base.Add(time.Minute))))
	require.NoError(t, repo.Insert(ctx, auditEntry("c", "u2", models.EventAppLock, base.Add(2*time.Minute))))
	require.NoError(t, repo.Insert(ctx, auditEntry("d", "", models.EventAppUnlock, base.Add(3*time.Minute))))

	t.Run("newest first", func(t *testing.T) {
		got, err := repo.Query(ctx, models.AuditFilter{})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, []string{"d", "c", "b", "a"}, ids(got))
		assert.Equal(t, full, got[3])
		assert.Empty(t, got[0].UserID)
	})

	t.Run("by user", func(t *testing.T) {
		got, err := repo.Query(ctx, models.AuditFilter{UserID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, ids(got))
	})

	t.Run("by event type and range", func(t *testing.T) {
		got, err := repo.Query(ctx, models.AuditFilter{
			EventType: models.EventAppLock,
			From:      base.Add(90 * time.Second),
			To:        base.Add(10 * time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, ids(got))
	})

	t.Run("limit", func(t *testing.T) {
		got, err := repo.Query(ctx, models.AuditFilter{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"d", "c"}, ids(got))
	})
}

func TestAuditLogRepository_InsertMinimalEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditLogRepository(db, logger.Nop())
	ctx := context.Background()

	// resource_type, device_info и user_agent пустые, но NOT NULL
	entry := models.AuditLogEntry{
		ID:        "m",
		EventType: models.EventLogout,
		Action:    "LOGOUT",
		Timestamp: time.UnixMilli(1_700_000_000_000),
	}
	require.NoError(t, repo.Insert(ctx, entry))

	var resourceType, device, agent string
	var userID, sessionID *string
	err := db.QueryRowContext(ctx,
		`SELECT resource_type, device_info, user_agent, user_id, session_id FROM audit_logs WHERE id = 'm'`,
	).Scan(&resourceType, &device, &agent, &userID, &sessionID)
	require.NoError(t, err)
	assert.Empty(t, resourceType)
	assert.Empty(t, device)
	assert.Empty(t, agent)
	assert.Nil(t, userID)
	assert.Nil(t, sessionID)

	got, err := repo.Query(ctx, models.AuditFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.AuditLogEntry{entry}, got)
}

func TestAuditLogRepository_DeleteOlderThan(t *testing.T) {
	repo := newTestAuditRepo(t)
	ctx := context.Background()
	cutoff := time.UnixMilli(1_700_000_000_000)

	require.NoError(t, repo.Insert(ctx, auditEntry("old", "u", models.EventLogout, cutoff.Add(-time.Second))))
	require.NoError(t, repo.Insert(ctx, auditEntry("edge", "u", models.EventLogout, cutoff)))
	require.NoError(t, repo.Insert(ctx, auditEntry("after", "u", models.EventLogout, cutoff.Add(time.Second))))
	require.NoError(t, repo.Insert(ctx, auditEntry("new", "u", models.EventLogout, cutoff.Add(time.Hour))))

	n, err := repo.DeleteOlderThan(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.Query(ctx, models.AuditFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "after", "edge"}, ids(got))
}

func TestAuditLogRepository_InsertError(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewAuditLogRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnError(errors.New("disk I/O error"))

	err := repo.Insert(context.Background(), auditEntry("x", "u", models.EventLogout, time.Now()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_QueryError(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewAuditLogRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM audit_logs").WillReturnError(errors.New("boom"))

	_, err := repo.Query(context.Background(), models.AuditFilter{UserID: "u"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_PurgeError(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewAuditLogRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM audit_logs").WillReturnError(errors.New("locked"))

	_, err := repo.DeleteOlderThan(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_ScanError(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewAuditLogRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"id"}).AddRow("only-one-column")
	mock.ExpectQuery("SELECT (.+) FROM audit_logs").WillReturnRows(rows)

	_, err := repo.Query(context.Background(), models.AuditFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func ids(entries []models.AuditLogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
