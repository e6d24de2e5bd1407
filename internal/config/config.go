// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the development server. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the address and timeout of the remote notes API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings of the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// DevServer holds the settings of the local notes API.
	DevServer DevServer `envPrefix:"DEVSERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds outbound HTTP settings for the notes API.
type Adapter struct {
	// Address is the base URL of the notes API
	// (e.g. "https://notesapi-ebon.vercel.app" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every single request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the client storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite settings used to persist the session token.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path the client writes its log to.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// DevServer holds the settings of the in-memory notes API.
type DevServer struct {
	// Address is the listen address in "host:port" form.
	// Env: DEVSERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// Token, when non-empty, is the only bearer token the server accepts.
	// An empty token makes the server accept any non-empty bearer token.
	// Env: DEVSERVER_TOKEN
	Token string `env:"TOKEN"`
}

const (
	defaultAdapterAddress = "https://notesapi-ebon.vercel.app"
	defaultRequestTimeout = 15 * time.Second
	defaultDSN            = "notes-client.db"
	defaultLogLevel       = "debug"
	defaultLogFile        = "notes-client.log"
	defaultDevServerAddr  = "localhost:8080"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Address:        defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage:   Storage{DB: DB{DSN: defaultDSN}},
		Log:       Log{Level: defaultLogLevel, File: defaultLogFile},
		DevServer: DevServer{Address: defaultDevServerAddr},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
