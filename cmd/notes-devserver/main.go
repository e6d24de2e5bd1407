// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command notes-devserver runs an in-memory notes API on the local machine
// for development of the notes client.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/devserver"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/server"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/google/uuid"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	demoIssuer  = "notes-devserver"
	demoSubject = "demo"
	demoTTL     = 24 * time.Hour
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("notes-devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Address).Bool("fixed_token", cfg.Token != "").Msg("received configs")

	if cfg.Token == "" {
		printDemoToken()
	}

	notes := devserver.NewMemoryNotes(utils.NewUUIDGenerator(), validators.NewNoteValidator(), log)

	handlers, err := handler.NewHandlers(notes, *cfg, buildInfo.BuildVersion(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// printDemoToken prints a JWT the client can log in with. Any non-empty
// bearer token is accepted; the JWT gives the session a subject and expiry.
func printDemoToken() {
	token, err := utils.GenerateJWTToken(demoIssuer, demoSubject, demoTTL, uuid.NewString())
	if err != nil {
		fmt.Printf("Demo token: unavailable (%v)\n", err)
		return
	}
	fmt.Printf("Demo token: %s\n", token)
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
