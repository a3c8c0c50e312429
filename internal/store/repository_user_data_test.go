// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/models"
)

func TestUserDataRepository_DeleteAllUserData(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserDataRepository(db, logger.Nop())
	ctx := context.Background()

	insertUser(t, db, "u1")
	insertUser(t, db, "u2")
	for _, table := range models.UserOwnedTables {
		insertUserRow(t, db, table, table+"-1", "u1")
		insertUserRow(t, db, table, table+"-2", "u2")
	}

	require.NoError(t, repo.DeleteAllUserData(ctx, "u1"))

	for _, table := range models.UserOwnedTables {
		assert.Zero(t, countRows(t, db, table, "u1"), table)
		assert.Equal(t, 1, countRows(t, db, table, "u2"), table)
	}

	users, err := repo.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, users)
}

func TestUserDataRepository_DeleteAllUserData_RollsBack(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewUserDataRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM meals").WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM recipes").WithArgs("u1").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.DeleteAllUserData(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "recipes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDataRepository_DeleteAllUserData_DeletesUserLast(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewUserDataRepository(db, logger.Nop())

	mock.ExpectBegin()
	for _, table := range models.UserOwnedTables {
		mock.ExpectExec("DELETE FROM " + table + " WHERE user_id").WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("DELETE FROM users WHERE id").WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAllUserData(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDataRepository_DeleteCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserDataRepository(db, logger.Nop())
	ctx := context.Background()

	insertUser(t, db, "u1")
	insertUserRow(t, db, "pantry_items", "p1", "u1")
	insertUserRow(t, db, "meals", "m1", "u1")

	require.NoError(t, repo.DeleteCategory(ctx, "u1", models.CategoryPantry))
	assert.Zero(t, countRows(t, db, "pantry_items", "u1"))
	assert.Equal(t, 1, countRows(t, db, "meals", "u1"))

	err := repo.DeleteCategory(ctx, "u1", models.DataCategory("NOPE"))
	assert.ErrorIs(t, err, ErrUnknownDataCategory)
}

func TestUserDataRepository_GetAllUsers_Error(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()
	repo := NewUserDataRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.GetAllUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
