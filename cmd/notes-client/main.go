// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command notes-client is the terminal client of the notes API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/auth"
	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/notify"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const toastBuffer = 32

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("notes-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("notes-client", cfg.Log.File, cfg.Log.Level)
	log.Debug().Str("base_url", cfg.Adapter.BaseURL).Str("dsn", cfg.Storage.DSN).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	session := auth.NewSession(storages.SessionRepository, log)

	notesAdapter, err := adapter.NewHTTPNotesAdapter(cfg.Adapter, session, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("create notes adapter")
	}

	toasts := notify.NewQueue(toastBuffer)
	services := service.NewClientServices(notesAdapter, session, notify.NewMulti(toasts, notify.NewLog(log)), log)

	ui := tui.New(services.Notes, session, toasts.C(), buildInfo, log)

	app, err := client.NewApp(session, ui, workers.New(services.Binder), log, storages, services)
	if err != nil {
		_ = services.Close()
		_ = storages.Close()
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
