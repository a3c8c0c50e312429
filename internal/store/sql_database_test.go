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
)

func TestWithTx_Commit(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE t").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, "UPDATE t SET x = 1")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()

	wantErr := errors.New("fn failed")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()

	mock.ExpectBegin().WillReturnError(errors.New("busy"))

	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, conn := newMockDB(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error { return nil })
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestCreateDBDirIfNotExists(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, createDBDirIfNotExists("file:"+dir+"/a/b/guard.db?_foreign_keys=on"))
	assert.DirExists(t, dir+"/a/b")

	assert.NoError(t, createDBDirIfNotExists("file::memory:?cache=shared"))
	assert.NoError(t, createDBDirIfNotExists("guard.db"))
}
