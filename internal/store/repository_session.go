// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. It works on the single-row "sessions" table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// Save implements [SessionRepository].
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	query, args, err := buildSaveSessionQuery(session)
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Save").Msg("failed to build query")
		return fmt.Errorf("build save session query: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Save").Msg("failed to save session")
		return fmt.Errorf("save session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("save session rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotSaved
	}

	r.logger.Debug().Str("func", "sessionRepository.Save").Str("subject", session.Subject).Msg("session saved")
	return nil
}

// Load implements [SessionRepository].
func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("failed to build query")
		return models.Session{}, fmt.Errorf("build load session query: %w", err)
	}

	var (
		session   models.Session
		expiresAt sql.NullTime
	)
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&session.Token, &session.Subject, &expiresAt, &session.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}

	return session, nil
}

// Clear implements [SessionRepository].
func (r *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearSessionQuery()
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to build query")
		return fmt.Errorf("build clear session query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}

	r.logger.Debug().Str("func", "sessionRepository.Clear").Msg("session cleared")
	return nil
}
