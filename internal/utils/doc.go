// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client and
// the development notes API: the resty client constructor, JSON response
// writing, bearer/JWT token helpers, context keys and id generation.
package utils
