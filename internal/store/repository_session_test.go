// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &sessionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestSessionRepository_Save_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	savedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	expires := savedAt.Add(time.Hour)
	session := models.Session{Token: "tkn", Subject: "alice", ExpiresAt: expires, SavedAt: savedAt}

	mock.ExpectExec(regexp.QuoteMeta("REPLACE INTO sessions (id,token,subject,expires_at,saved_at) VALUES (?,?,?,?,?)")).
		WithArgs(sessionRowID, "tkn", "alice", expires, savedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_NoExpiryStoresNull(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	savedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("REPLACE INTO sessions").
		WithArgs(sessionRowID, "opaque", "", nil, savedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), models.Session{Token: "opaque", SavedAt: savedAt}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("REPLACE INTO sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), models.Session{Token: "tkn"})
	assert.ErrorIs(t, err, ErrSessionNotSaved)
}

func TestSessionRepository_Save_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("REPLACE INTO sessions").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(context.Background(), models.Session{Token: "tkn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestSessionRepository_Load_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	savedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	expires := savedAt.Add(24 * time.Hour)

	rows := sqlmock.NewRows(sessionColumns).AddRow("tkn", "alice", expires, savedAt)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT token, subject, expires_at, saved_at FROM sessions WHERE id = ?")).
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	got, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Session{Token: "tkn", Subject: "alice", ExpiresAt: expires, SavedAt: savedAt}, got)
}

func TestSessionRepository_Load_NullExpiry(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	savedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(sessionColumns).AddRow("opaque", "", nil, savedAt)
	mock.ExpectQuery("SELECT (.+) FROM sessions").WillReturnRows(rows)

	got, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, got.ExpiresAt.IsZero())
	assert.False(t, got.Expired(time.Now()))
}

func TestSessionRepository_Load_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Load_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnError(errors.New("no such table: sessions"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "no such table")
}

// ── Clear ───────────────────────────────────────────────────────────────────

func TestSessionRepository_Clear(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = ?")).
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Clear_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").WillReturnError(errors.New("database is locked"))

	err := repo.Clear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear session")
}
