// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-guard/internal/logger"
	"github.com/MKhiriev/go-health-guard/models"
)

type auditLogRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAuditLogRepository(db *DB, log *logger.Logger) AuditLogRepository {
	return &auditLogRepository{db: db, logger: log}
}

func (r *auditLogRepository) Insert(ctx context.Context, entry models.AuditLogEntry) error {
	_, err := r.db.ExecContext(ctx, insertAuditLogQuery,
		entry.ID,
		nullString(entry.UserID),
		string(entry.EventType),
		entry.Action,
		entry.ResourceType,
		nullString(entry.ResourceID),
		entry.Timestamp.UnixMilli(),
		entry.DeviceInfo,
		entry.UserAgent,
		nullString(entry.SessionID),
		nullString(entry.AdditionalInfo),
	)
	if err != nil {
		r.logger.Err(err).Str("func", "auditLogRepository.Insert").Msg("error inserting audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *auditLogRepository) Query(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error) {
	query, args, err := buildSelectAuditLogsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "auditLogRepository.Query").Msg("error querying audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var (
			entry                     models.AuditLogEntry
			eventType                 string
			timestamp                 int64
			userID, resourceID        sql.NullString
			sessionID, additionalInfo sql.NullString
		)
		err = rows.Scan(&entry.ID, &userID, &eventType, &entry.Action, &entry.ResourceType, &resourceID,
			&timestamp, &entry.DeviceInfo, &entry.UserAgent, &sessionID, &additionalInfo)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entry.UserID = userID.String
		entry.EventType = models.EventType(eventType)
		entry.ResourceID = resourceID.String
		entry.Timestamp = time.UnixMilli(timestamp)
		entry.SessionID = sessionID.String
		entry.AdditionalInfo = additionalInfo.String
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *auditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := buildDeleteAuditLogsBeforeQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "auditLogRepository.DeleteOlderThan").Msg("error purging audit entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// nullString stores empty strings as SQL NULL. Only the nullable columns
// (user_id, resource_id, session_id, additional_info) go through it.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
