// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the notes dev server.
//
// It exposes route wiring, request handlers, and middleware for the notes
// REST API. Cross-cutting concerns such as bearer authentication, request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the notes backend.
//
// Every failure is answered with the API's error payload:
//
//	{"errors":[{"msg":"Note not found"}]}
package http
