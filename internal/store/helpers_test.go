// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
)

// newTestDB opens a migrated SQLite database in a temporary directory.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "data", "guard.db") + "?_foreign_keys=on"
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func newTestKeys(t *testing.T, dir string) crypto.KeyProvider {
	t.Helper()

	keys, err := crypto.NewSoftwareKeyProvider(dir, logger.Nop())
	require.NoError(t, err)
	return keys
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return &DB{DB: conn, logger: logger.Nop()}, mock, conn
}

func insertUser(t *testing.T, db *DB, id string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO users (id, email, created_at) VALUES (?, ?, 0)`, id, id+"@example.com")
	require.NoError(t, err)
}

func insertUserRow(t *testing.T, db *DB, table, id, userID string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO `+table+` (id, user_id, payload) VALUES (?, ?, '{}')`, id, userID)
	require.NoError(t, err)
}

func countRows(t *testing.T, db *DB, table, userID string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE user_id = ?`, userID).Scan(&n))
	return n
}
