// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-adv-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser stores user and returns the assigned id.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// FindUserByEmail returns the user with the given email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AdvertisementRepository persists advertisements.
type AdvertisementRepository interface {
	// CreateAdvertisement stores adv and returns the assigned id.
	CreateAdvertisement(ctx context.Context, adv models.Advertisement) (int64, error)
	// GetAdvertisement returns the advertisement or ErrAdvertisementNotFound.
	GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error)
	// UpdateAdvertisement writes the present fields of update.
	// It returns ErrAdvertisementNotFound or ErrAdvertisementConflict.
	UpdateAdvertisement(ctx context.Context, id int64, update models.AdvertisementUpdate) error
	// DeleteAdvertisement removes the advertisement and reports whether
	// a row existed.
	DeleteAdvertisement(ctx context.Context, id int64) (bool, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
