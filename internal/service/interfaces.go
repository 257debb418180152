// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-adv-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and resolves Basic credentials to them.
type AuthService interface {
	// RegisterUser stores a new user with the digest of req.Password and
	// returns its id.
	RegisterUser(ctx context.Context, req models.CreateUserRequest) (int64, error)
	// Authenticate resolves the raw "Authorization" header value to a user.
	// Every credential problem is reported as ErrUnauthenticated.
	Authenticate(ctx context.Context, authorizationHeader string) (models.User, error)
}

// AdvertisementService implements the advertisement operations.
// Callers are expected to check ownership before mutating.
type AdvertisementService interface {
	CreateAdvertisement(ctx context.Context, owner models.User, req models.CreateAdvertisementRequest) (int64, error)
	GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error)
	// CheckOwnership returns ErrNotAdvertisementOwner unless user owns adv.
	CheckOwnership(ctx context.Context, adv models.Advertisement, user models.User) error
	UpdateAdvertisement(ctx context.Context, id int64, update models.AdvertisementUpdate) error
	DeleteAdvertisement(ctx context.Context, id int64) error
}
