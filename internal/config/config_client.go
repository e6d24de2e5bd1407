// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the notes API base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DSN is the SQLite connection string for the session store.
	DSN string
}

// ClientLog holds logger settings of the client.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the configuration of the terminal notes client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Log     ClientLog
}

// DevServerConfig is the configuration of the local notes API.
type DevServerConfig struct {
	// Address is the listen address.
	Address string
	// Token restricts accepted bearer tokens when non-empty.
	Token string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are command-line arguments without
// the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetDevServerConfig builds and validates the dev server config view from the
// merged structured configuration.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newDevServerConfig(cfg)
}

func newDevServerConfig(cfg *StructuredConfig) (*DevServerConfig, error) {
	devCfg := &DevServerConfig{
		Address:  cfg.DevServer.Address,
		Token:    cfg.DevServer.Token,
		LogLevel: cfg.Log.Level,
	}

	return devCfg, devCfg.validate()
}
