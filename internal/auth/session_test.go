// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T, ctrl *gomock.Controller) (*Session, *mock.MockSessionRepository) {
	t.Helper()
	repo := mock.NewMockSessionRepository(ctrl)
	return NewSession(repo, logger.Nop()), repo
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(past),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func nextEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no session event")
		return Event{}
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestSession_Login_JWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken("notes-devserver", "alice", time.Hour, "secret")
	require.NoError(t, err)

	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, saved models.Session) error {
		assert.Equal(t, token, saved.Token)
		assert.Equal(t, "alice", saved.Subject)
		assert.False(t, saved.ExpiresAt.IsZero())
		assert.False(t, saved.SavedAt.IsZero())
		return nil
	})

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	require.NoError(t, s.Login(ctx, "  "+token+"  "))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, token, s.Token())
	assert.Equal(t, "alice", s.Subject())
	assert.Equal(t, Event{Kind: LoggedIn, Subject: "alice"}, nextEvent(t, events))
}

func TestSession_Login_OpaqueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.Login(context.Background(), "not-a-jwt"))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, "not-a-jwt", s.Token())
	assert.Empty(t, s.Subject())
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestSession_Login_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{name: "empty", token: func(*testing.T) string { return "   " }, wantErr: ErrEmptyToken},
		{name: "expired jwt", token: expiredJWT, wantErr: ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no Save expected
			s, _ := newTestSession(t, ctrl)

			err := s.Login(context.Background(), tt.token(t))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, s.LoggedIn())
			assert.Empty(t, s.Token())
		})
	}
}

func TestSession_Login_PersistFailureStillLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	require.NoError(t, s.Login(context.Background(), "tkn"))
	assert.True(t, s.LoggedIn())
}

func TestSession_WithoutRepository(t *testing.T) {
	s := NewSession(nil, logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "tkn"))
	ok, err := s.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.LoggedIn())
}

func TestSession_TokenExpiresWhileHeld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	token, err := utils.GenerateJWTToken("notes-devserver", "alice", time.Minute, "secret")
	require.NoError(t, err)
	require.NoError(t, s.Login(context.Background(), token))

	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	assert.False(t, s.LoggedIn())
	assert.Equal(t, token, s.Token(), "expired token is still sent and rejected by the API")
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestSession_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Save(ctx, gomock.Any()).Return(nil),
		repo.EXPECT().Clear(ctx).Return(nil),
	)

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	require.NoError(t, s.Login(ctx, "tkn"))
	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())
	assert.Equal(t, LoggedIn, nextEvent(t, events).Kind)
	assert.Equal(t, LoggedOut, nextEvent(t, events).Kind)
}

func TestSession_Logout_ClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	repo.EXPECT().Clear(gomock.Any()).Return(errors.New("disk full"))

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	err := s.Logout(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear persisted session")
	assert.Equal(t, LoggedOut, nextEvent(t, events).Kind)
}

// ── Restore ─────────────────────────────────────────────────────────────────

func TestSession_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	ctx := context.Background()

	persisted := models.Session{
		Token:     "tkn",
		Subject:   "alice",
		ExpiresAt: time.Now().Add(time.Hour),
		SavedAt:   time.Now().Add(-time.Hour),
	}
	repo.EXPECT().Load(ctx).Return(persisted, nil)

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	ok, err := s.Restore(ctx)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tkn", s.Token())
	assert.Equal(t, Event{Kind: LoggedIn, Subject: "alice"}, nextEvent(t, events))
}

func TestSession_Restore_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)

	ok, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())
}

func TestSession_Restore_ExpiredIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	gomock.InOrder(
		repo.EXPECT().Load(gomock.Any()).Return(models.Session{Token: "old", ExpiresAt: time.Now().Add(-time.Minute)}, nil),
		repo.EXPECT().Clear(gomock.Any()).Return(nil),
	)

	ok, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())
}

func TestSession_Restore_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, repo := newTestSession(t, ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.Session{}, errors.New("no such table: sessions"))

	ok, err := s.Restore(context.Background())

	require.Error(t, err)
	assert.False(t, ok)
}

// ── Subscribe ───────────────────────────────────────────────────────────────

func TestSession_Subscribe_UnsubscribeClosesChannel(t *testing.T) {
	s := NewSession(nil, logger.Nop())

	events, unsubscribe := s.Subscribe()
	unsubscribe()
	unsubscribe()

	_, open := <-events
	assert.False(t, open)

	// publishing after unsubscribe must not panic
	require.NoError(t, s.Login(context.Background(), "tkn"))
}

func TestSession_Subscribe_SlowSubscriberKeepsNewest(t *testing.T) {
	s := NewSession(nil, logger.Nop())
	ctx := context.Background()

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	for i := 0; i < subscriberBuffer; i++ {
		require.NoError(t, s.Login(ctx, "tkn"))
	}
	require.NoError(t, s.Logout(ctx))

	assert.Len(t, events, subscriberBuffer)
	var last Event
	for len(events) > 0 {
		last = <-events
	}
	assert.Equal(t, LoggedOut, last.Kind)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "logged_in", LoggedIn.String())
	assert.Equal(t, "logged_out", LoggedOut.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}
