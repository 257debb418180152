// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the advertisement board HTTP API.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrForbidden] for 403). A 400 carrying
// field errors is returned as a [*ValidationError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-adv-board/models"
)

// AdvertisementAPI talks to the advertisement board server.
type AdvertisementAPI interface {
	// SetCredentials stores the login and password sent as Basic
	// credentials with every authenticated request.
	SetCredentials(login, password string)

	RegisterUser(ctx context.Context, req models.CreateUserRequest) (int64, error)

	CreateAdvertisement(ctx context.Context, req models.CreateAdvertisementRequest) (int64, error)
	GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error)
	// UpdateAdvertisement sends only the present fields of update.
	UpdateAdvertisement(ctx context.Context, id int64, update models.AdvertisementUpdate) error
	DeleteAdvertisement(ctx context.Context, id int64) error
}
