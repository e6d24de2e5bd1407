// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	sessionsTable = "sessions"

	// the table keeps a single row
	sessionRowID = 1
)

var sessionColumns = []string{"token", "subject", "expires_at", "saved_at"}

func buildSaveSessionQuery(session models.Session) (string, []any, error) {
	return sq.Replace(sessionsTable).
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionRowID, session.Token, session.Subject, nullableTime(session.ExpiresAt), session.SavedAt.UTC()).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return sq.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildClearSessionQuery() (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
