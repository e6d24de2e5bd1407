// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoUI      = errors.New("no ui is given")
	ErrNoSession = errors.New("no session is given")
)
