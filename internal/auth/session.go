// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth holds the client's login session.
//
// [Session] owns the bearer token used for every request to the notes API.
// It reads subject and expiry from the token when it is a JWT, optionally
// persists the session between runs through a [store.SessionRepository] and
// publishes [Event] values when the user logs in or out.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const subscriberBuffer = 8

var (
	// ErrEmptyToken is returned by Login for a blank token.
	ErrEmptyToken = errors.New("token is empty")

	// ErrTokenExpired is returned by Login for a JWT whose exp is in the past.
	ErrTokenExpired = errors.New("token is expired")
)

// EventKind tells logged-in and logged-out events apart.
type EventKind int

const (
	LoggedIn EventKind = iota + 1
	LoggedOut
)

func (k EventKind) String() string {
	switch k {
	case LoggedIn:
		return "logged_in"
	case LoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

// Event is published on every login and logout.
type Event struct {
	Kind    EventKind
	Subject string
}

// Session is the login state of the client. The zero value is not usable;
// construct it with [NewSession].
type Session struct {
	mu      sync.RWMutex
	current models.Session

	subs   map[int]chan Event
	nextID int

	repo   store.SessionRepository
	now    func() time.Time
	logger *logger.Logger
}

// NewSession returns a logged-out session. repo may be nil, in which case the
// session lives only in memory.
func NewSession(repo store.SessionRepository, log *logger.Logger) *Session {
	return &Session{
		subs:   make(map[int]chan Event),
		repo:   repo,
		now:    time.Now,
		logger: log,
	}
}

// Token returns the held bearer token, or "" when logged out. An expired
// token is still returned so that the API answers 401 for it.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Token
}

// LoggedIn reports whether a non-expired token is held.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeLocked()
}

// Subject returns the "sub" claim of the current token, if any.
func (s *Session) Subject() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Subject
}

// ExpiresAt returns the expiry of the current token; zero when unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.ExpiresAt
}

func (s *Session) activeLocked() bool {
	return s.current.Token != "" && !s.current.Expired(s.now())
}

// Login installs token as the current session. A JWT contributes subject and
// expiry; any other non-empty string is accepted as an opaque token with no
// known expiry. A failure to persist the session is logged and does not fail
// the login.
func (s *Session) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	session := models.Session{Token: token, SavedAt: s.now()}
	claims, err := utils.ParseClaimsUnverified(token)
	if err != nil {
		s.logger.Debug().Str("func", "Session.Login").Msg("token is not a JWT, using it as opaque")
	} else {
		session.Subject = claims.Subject
		session.ExpiresAt = claims.ExpiresAt
	}
	if session.Expired(s.now()) {
		return ErrTokenExpired
	}

	if s.repo != nil {
		if err = s.repo.Save(ctx, session); err != nil {
			s.logger.Warn().Err(err).Str("func", "Session.Login").Msg("failed to persist session")
		}
	}

	s.mu.Lock()
	s.current = session
	s.publishLocked(Event{Kind: LoggedIn, Subject: session.Subject})
	s.mu.Unlock()

	s.logger.Info().Str("func", "Session.Login").Str("subject", session.Subject).Msg("logged in")
	return nil
}

// Logout drops the current session from memory and from the repository.
// The logged-out event is published even when the repository fails.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	subject := s.current.Subject
	s.current = models.Session{}
	s.publishLocked(Event{Kind: LoggedOut, Subject: subject})
	s.mu.Unlock()

	s.logger.Info().Str("func", "Session.Logout").Str("subject", subject).Msg("logged out")

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

// Restore loads a persisted session. It reports whether a usable session was
// found; an expired one is removed from the repository.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s.repo == nil {
		return false, nil
	}

	session, err := s.repo.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load persisted session: %w", err)
	}

	if session.Token == "" || session.Expired(s.now()) {
		s.logger.Info().Str("func", "Session.Restore").Msg("persisted session expired")
		if err = s.repo.Clear(ctx); err != nil {
			return false, fmt.Errorf("clear expired session: %w", err)
		}
		return false, nil
	}

	s.mu.Lock()
	s.current = session
	s.publishLocked(Event{Kind: LoggedIn, Subject: session.Subject})
	s.mu.Unlock()

	s.logger.Info().Str("func", "Session.Restore").Str("subject", session.Subject).Msg("session restored")
	return true, nil
}

// Subscribe returns a channel of session events and a function that ends the
// subscription and closes the channel. Publishing never blocks: a subscriber
// that falls behind loses its oldest events.
func (s *Session) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Event, subscriberBuffer)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

func (s *Session) publishLocked(ev Event) {
	for _, ch := range s.subs {
		deliver(ch, ev)
	}
}

// deliver sends ev, evicting the oldest buffered event while ch is full.
func deliver(ch chan Event, ev Event) {
	for {
		select {
		case ch <- ev:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
