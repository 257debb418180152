// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-adv-board/internal/config"
	"github.com/MKhiriev/go-adv-board/internal/logger"
)

// Storages bundles the repositories that share one database handle.
type Storages struct {
	UserRepository          UserRepository
	AdvertisementRepository AdvertisementRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies the schema and builds the
// repositories. The caller owns the result and must Close it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying schema")
		_ = db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log)
}

// NewStoragesFromDB builds the repositories over an already opened handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) (*Storages, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}

	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		AdvertisementRepository: NewAdvertisementRepository(db, log),
		db:                      db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
