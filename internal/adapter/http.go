// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpNotesAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs the REST implementation of [NotesAdapter].
// It normalises the base URL from cfg.BaseURL (a bare host:port gets an
// http:// scheme) and configures the resty client with cfg.RequestTimeout.
// tokens is consulted on every request for the bearer token.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed.
func NewHTTPNotesAdapter(cfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (NotesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpNotesAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListNotes implements [NotesAdapter]. GET /notes?keyword={keyword}.
func (h *httpNotesAdapter) ListNotes(ctx context.Context, keyword string) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("keyword", keyword).
		Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	h.logResponse(resp)
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}
	if body.Notes == nil {
		body.Notes = []models.Note{}
	}

	return body.Notes, nil
}

// CreateNote implements [NotesAdapter]. POST /notes.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}

	return h.decodeNote(resp, "create note")
}

// UpdateNote implements [NotesAdapter]. PUT /notes/{id}.
func (h *httpNotesAdapter) UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(req).
		Put("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}

	return h.decodeNote(resp, "update note")
}

// SetPinned implements [NotesAdapter]. PUT /notes/{id}/isPinned.
func (h *httpNotesAdapter) SetPinned(ctx context.Context, id string, pinned bool) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.PinRequest{IsPinned: pinned}).
		Put("/notes/{id}/isPinned")
	if err != nil {
		return models.Note{}, fmt.Errorf("pin note request: %w", err)
	}

	return h.decodeNote(resp, "pin note")
}

// DeleteNote implements [NotesAdapter]. DELETE /notes/{id}.
func (h *httpNotesAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	h.logResponse(resp)

	return mapHTTPError(resp)
}

func (h *httpNotesAdapter) decodeNote(resp *resty.Response, op string) (models.Note, error) {
	h.logResponse(resp)
	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var body models.NoteResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Note{}, fmt.Errorf("decode %s response: %w", op, err)
	}

	return body.Note, nil
}

func (h *httpNotesAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.ids.Generate())
	if h.tokens != nil {
		if token := strings.TrimSpace(h.tokens.Token()); token != "" {
			req.SetAuthScheme("Bearer").SetAuthToken(token)
		}
	}
	return req
}

func (h *httpNotesAdapter) logResponse(resp *resty.Response) {
	h.logger.Debug().
		Str("func", "httpNotesAdapter").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time().Round(time.Millisecond)).
		Msg("notes api response")
}
