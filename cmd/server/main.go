// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/handler"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/realtime"
	"github.com/MKhiriev/go-pickup/internal/server"
	"github.com/MKhiriev/go-pickup/internal/service"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-pickup-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.IssueTokenFor != "" {
		issueToken(*cfg, log)
		return
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	broker := realtime.NewBroker(cfg.Realtime, log)
	defer broker.Close()

	services, err := service.NewServices(storages, broker, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, broker, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// issueToken prints a bearer token for the configured user and exits. There
// is no sign-up flow; operators hand these tokens to client users.
func issueToken(cfg config.StructuredConfig, log *logger.Logger) {
	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), cfg.App.IssueTokenFor)
	if err != nil {
		log.Fatal().Err(err).Msg("error issuing token")
	}

	fmt.Println(token.SignedString)
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
