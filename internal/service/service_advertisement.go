// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/store"
	"github.com/MKhiriev/go-adv-board/models"
)

type advertisementService struct {
	advertisementRepository store.AdvertisementRepository

	logger *logger.Logger
}

func NewAdvertisementService(advertisementRepository store.AdvertisementRepository, logger *logger.Logger) AdvertisementService {
	return &advertisementService{
		advertisementRepository: advertisementRepository,
		logger:                  logger,
	}
}

// CreateAdvertisement stores a new advertisement owned by owner.
func (s *advertisementService) CreateAdvertisement(ctx context.Context, owner models.User, req models.CreateAdvertisementRequest) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := s.advertisementRepository.CreateAdvertisement(ctx, models.Advertisement{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     owner.ID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", owner.ID).Msg("advertisement creation ended with error")
		return 0, fmt.Errorf("advertisement creation ended with error: %w", err)
	}

	return id, nil
}

func (s *advertisementService) GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error) {
	adv, err := s.advertisementRepository.GetAdvertisement(ctx, id)
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("advertisement %d: %w", id, err)
	}

	return adv, nil
}

func (s *advertisementService) CheckOwnership(ctx context.Context, adv models.Advertisement, user models.User) error {
	if adv.OwnerID != user.ID {
		logger.FromContext(ctx).Debug().
			Int64("advertisement_id", adv.ID).
			Int64("owner_id", adv.OwnerID).
			Int64("user_id", user.ID).
			Msg("access to another user's advertisement")
		return ErrNotAdvertisementOwner
	}

	return nil
}

// UpdateAdvertisement applies the present fields of update.
// An empty update only re-checks that the advertisement exists.
func (s *advertisementService) UpdateAdvertisement(ctx context.Context, id int64, update models.AdvertisementUpdate) error {
	log := logger.FromContext(ctx)

	if err := s.advertisementRepository.UpdateAdvertisement(ctx, id, update); err != nil {
		log.Err(err).Int64("advertisement_id", id).Msg("advertisement update ended with error")
		return fmt.Errorf("advertisement update ended with error: %w", err)
	}

	return nil
}

// DeleteAdvertisement removes the advertisement or reports
// store.ErrAdvertisementNotFound if it is already gone.
func (s *advertisementService) DeleteAdvertisement(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	deleted, err := s.advertisementRepository.DeleteAdvertisement(ctx, id)
	if err != nil {
		log.Err(err).Int64("advertisement_id", id).Msg("advertisement deletion ended with error")
		return fmt.Errorf("advertisement deletion ended with error: %w", err)
	}
	if !deleted {
		return fmt.Errorf("advertisement %d: %w", id, store.ErrAdvertisementNotFound)
	}

	return nil
}
