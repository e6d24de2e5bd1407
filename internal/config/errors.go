// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing or unparsable notes API
	// address, or a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty session DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates a level zerolog cannot parse.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidDevServerConfigs indicates an empty listen address.
	ErrInvalidDevServerConfigs = errors.New("invalid dev server configuration")
)
