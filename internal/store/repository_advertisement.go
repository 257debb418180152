// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/models"
)

// advertisementRepository is the PostgreSQL-backed implementation of
// [AdvertisementRepository].
type advertisementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdvertisementRepository constructs an [AdvertisementRepository] backed
// by the provided database connection and logger.
func NewAdvertisementRepository(db *DB, logger *logger.Logger) AdvertisementRepository {
	logger.Debug().Msg("creating advertisement repository")
	return &advertisementRepository{
		db:     db,
		logger: logger,
	}
}

func (a *advertisementRepository) CreateAdvertisement(ctx context.Context, adv models.Advertisement) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAdvertisementQuery(adv)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.CreateAdvertisement").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = a.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "*advertisementRepository.CreateAdvertisement").
			Int64("owner_id", adv.OwnerID).
			Str("classification", a.db.classify(err).String()).
			Msg("error inserting advertisement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (a *advertisementRepository) GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAdvertisementQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.GetAdvertisement").Msg("error building query")
		return models.Advertisement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		adv         models.Advertisement
		description sql.NullString
	)
	err = a.db.QueryRowContext(ctx, query, args...).
		Scan(&adv.ID, &adv.Created, &adv.Title, &description, &adv.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Advertisement{}, ErrAdvertisementNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.GetAdvertisement").Int64("id", id).Msg("error selecting advertisement")
		return models.Advertisement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if description.Valid {
		adv.Description = &description.String
	}

	return adv, nil
}

// UpdateAdvertisement locks the row and writes the present fields inside one
// transaction. An update without present fields only checks existence.
//
// Error handling:
//   - no row with id → [ErrAdvertisementNotFound].
//   - constraint or data violation (class 22, 23) → [ErrAdvertisementConflict].
//   - anything else → wrapped low-level error.
func (a *advertisementRepository) UpdateAdvertisement(ctx context.Context, id int64, update models.AdvertisementUpdate) error {
	log := logger.FromContext(ctx)

	lockQuery, lockArgs, err := buildLockAdvertisementQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.UpdateAdvertisement").Msg("error building lock query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		updateQuery string
		updateArgs  []any
	)
	if !update.IsEmpty() {
		updateQuery, updateArgs, err = buildUpdateAdvertisementQuery(id, update.Assignments())
		if err != nil {
			log.Err(err).Str("func", "*advertisementRepository.UpdateAdvertisement").Msg("error building update query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.UpdateAdvertisement").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var lockedID int64
	err = tx.QueryRowContext(ctx, lockQuery, lockArgs...).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAdvertisementNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.UpdateAdvertisement").Int64("id", id).Msg("failed to lock advertisement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if updateQuery != "" {
		if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			classification := a.db.classify(err)
			if isConstraintViolation(classification) {
				log.Warn().
					Err(err).
					Str("func", "*advertisementRepository.UpdateAdvertisement").
					Int64("id", id).
					Str("classification", classification.String()).
					Msg("update rejected by database")
				return fmt.Errorf("%w: %w", ErrAdvertisementConflict, err)
			}

			log.Err(err).Str("func", "*advertisementRepository.UpdateAdvertisement").Int64("id", id).Msg("failed to update advertisement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*advertisementRepository.UpdateAdvertisement").Int64("id", id).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (a *advertisementRepository) DeleteAdvertisement(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAdvertisementQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.DeleteAdvertisement").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.DeleteAdvertisement").Int64("id", id).Msg("failed to delete advertisement")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*advertisementRepository.DeleteAdvertisement").Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
