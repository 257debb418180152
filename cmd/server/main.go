// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-adv-board/internal/config"
	"github.com/MKhiriev/go-adv-board/internal/handler"
	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/server"
	"github.com/MKhiriev/go-adv-board/internal/service"
	"github.com/MKhiriev/go-adv-board/internal/store"
	"github.com/MKhiriev/go-adv-board/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("adv-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping default")
	}

	log.Debug().Any("server", cfg.Server).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, validators.NewPayloadValidator(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
