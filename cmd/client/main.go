// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/client"
	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/service"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/internal/tui"
	"github.com/MKhiriev/go-pickup/internal/workers"
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

	log := logger.NewClientLogger("go-pickup-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	collections, err := adapter.NewHTTPCollectionAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create collection adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, collections, cfg.Adapter.Token, log)
	refresher := workers.NewFocusRefresher(cfg.Workers.RefreshInterval, log)

	ui, err := tui.New(services, refresher, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(refresher), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Println(err)
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
