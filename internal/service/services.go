// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/store"
)

type Services struct {
	AuthService          AuthService
	AdvertisementService AdvertisementService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, logger),
		AdvertisementService: NewAdvertisementService(storages.AdvertisementRepository, logger),
	}
}
