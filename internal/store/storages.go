// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-guard/internal/config"
	"github.com/MKhiriev/go-health-guard/internal/crypto"
	"github.com/MKhiriev/go-health-guard/internal/logger"
)

// Storages bundles every local store of the security core.
type Storages struct {
	DB          *DB
	Preferences Preferences
	AuditLogs   AuditLogRepository
	UserData    UserDataRepository
	Files       UserFileStore
}

// NewStorages connects to SQLite, applies migrations and builds the
// repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, keys crypto.KeyProvider, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting to SQLite")
		return nil, fmt.Errorf("error connecting to SQLite: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error migrating SQLite")
		return nil, fmt.Errorf("error migrating SQLite: %w", err)
	}

	prefs, err := NewSecurePreferences(ctx, db, keys, log.WithComponent("preferences"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error opening secure preferences: %w", err)
	}

	return &Storages{
		DB:          db,
		Preferences: prefs,
		AuditLogs:   NewAuditLogRepository(db, log),
		UserData:    NewUserDataRepository(db, log),
		Files:       NewUserFileStore(cfg.Files, log),
	}, nil
}

func (s *Storages) Close() error {
	return s.DB.Close()
}
