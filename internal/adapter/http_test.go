// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestAdapter(t *testing.T, serverURL string, token string) NotesAdapter {
	t.Helper()
	cfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPNotesAdapter(cfg, staticToken(token), logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPNotesAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPNotesAdapter(config.ClientAdapter{BaseURL: "  "}, staticToken(""), logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://notesapi-ebon.vercel.app/", want: "https://notesapi-ebon.vercel.app"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ListNotes ───────────────────────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	want := []models.Note{
		{ID: "n1", Title: "a", Tags: []string{"x"}},
		{ID: "n2", Title: "b", IsPinned: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notes", r.URL.Path)
		assert.Equal(t, "milk", r.URL.Query().Get("keyword"))
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		writeJSON(t, w, http.StatusOK, models.NotesResponse{Notes: want})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "tkn").ListNotes(context.Background(), "milk")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListNotes_EmptyKeywordStillSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, r.URL.Query().Has("keyword"))
		assert.Equal(t, "", r.URL.Query().Get("keyword"))
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "tkn").ListNotes(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, got, "a loaded empty list must not be nil")
	assert.Empty(t, got)
}

func TestListNotes_ExpiredTokenStillSent(t *testing.T) {
	const token = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhbGljZSIsImV4cCI6MX0.c2ln"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Errors: []models.ErrorItem{{Msg: "Unauthorized"}}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, token).ListNotes(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, "Unauthorized", MessageOf(err))
}

func TestListNotes_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Errors: []models.ErrorItem{{Msg: "Unauthorized"}}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").ListNotes(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Unauthorized", MessageOf(err))
}

func TestListNotes_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "tkn").ListNotes(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode list notes response")
	assert.Equal(t, FallbackMessage, MessageOf(err))
}

// ── CreateNote ──────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.NoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.NoteRequest{Title: "Groceries", Description: "Milk, eggs", Tags: []string{"home"}}, req)

		writeJSON(t, w, http.StatusCreated, models.NoteResponse{Note: models.Note{
			ID: "n1", Title: req.Title, Description: req.Description, Tags: req.Tags,
		}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "tkn").CreateNote(context.Background(), models.NoteRequest{
		Title: "Groceries", Description: "Milk, eggs", Tags: []string{"home"},
	})

	require.NoError(t, err)
	assert.Equal(t, "n1", got.ID)
	assert.False(t, got.IsPinned)
}

func TestCreateNote_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Errors: []models.ErrorItem{
			{Msg: "Title is required"}, {Msg: "Description is required"},
		}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "tkn").CreateNote(context.Background(), models.NoteRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Title is required", MessageOf(err))
}

// ── UpdateNote / SetPinned ──────────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notes/n1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.NoteResponse{Note: models.Note{ID: "n1", Title: "new"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "tkn").UpdateNote(context.Background(), "n1", models.NoteRequest{Title: "new"})

	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
}

func TestUpdateNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Errors: []models.ErrorItem{{Msg: "Note not found"}}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "tkn").UpdateNote(context.Background(), "zz", models.NoteRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Note not found", MessageOf(err))
}

func TestSetPinned_SendsOnlyFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notes/n1/isPinned", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"isPinned": true}, body)

		writeJSON(t, w, http.StatusOK, models.NoteResponse{Note: models.Note{ID: "n1", IsPinned: true}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "tkn").SetPinned(context.Background(), "n1", true)

	require.NoError(t, err)
	assert.True(t, got.IsPinned)
}

func TestSetPinned_PathEscaping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/a%2Fb/isPinned", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, models.NoteResponse{Note: models.Note{ID: "a/b"}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "tkn").SetPinned(context.Background(), "a/b", false)
	require.NoError(t, err)
}

// ── DeleteNote ──────────────────────────────────────────────────────────────

func TestDeleteNote_IgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/notes/n1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "tkn").DeleteNote(context.Background(), "n1")
	assert.NoError(t, err)
}

func TestDeleteNote_ServerErrorWithoutPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "tkn").DeleteNote(context.Background(), "n1")

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, FallbackMessage, MessageOf(err))
}

// ── transport ───────────────────────────────────────────────────────────────

func TestRequest_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL, "tkn").ListNotes(ctx, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, FallbackMessage, MessageOf(err))
}

func TestRequest_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url, "tkn").DeleteNote(context.Background(), "n1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete note request")
}
