// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/models"
)

type userDataRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserDataRepository(db *DB, log *logger.Logger) UserDataRepository {
	return &userDataRepository{db: db, logger: log}
}

func (r *userDataRepository) DeleteAllUserData(ctx context.Context, userID string) error {
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, table := range models.UserOwnedTables {
			if err := deleteUserRows(ctx, tx, table, userID); err != nil {
				return err
			}
		}

		query, args, err := buildDeleteUserQuery(userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete from users: %w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "userDataRepository.DeleteAllUserData").Msg("error deleting user data")
		return err
	}

	return nil
}

func (r *userDataRepository) DeleteCategory(ctx context.Context, userID string, category models.DataCategory) error {
	table, ok := category.Table()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDataCategory, category)
	}

	if err := deleteUserRows(ctx, r.db, table, userID); err != nil {
		r.logger.Err(err).Str("func", "userDataRepository.DeleteCategory").Str("table", table).Msg("error deleting category")
		return err
	}

	return nil
}

func (r *userDataRepository) GetAllUsers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUserIDsQuery)
	if err != nil {
		r.logger.Err(err).Str("func", "userDataRepository.GetAllUsers").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func deleteUserRows(ctx context.Context, db DBTX, table, userID string) error {
	query, args, err := buildDeleteUserRowsQuery(table, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete from %s: %w: %w", table, ErrExecutingStatement, err)
	}
	return nil
}
