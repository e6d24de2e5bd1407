// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/notify"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type opKind int

const (
	opLoad opKind = iota
	opMutate
	opDelete
)

// operation is one request issued by the store. gen is the session
// generation it belongs to; a reset bumps the generation and the result of
// the operation is then discarded.
type operation struct {
	ctx     context.Context
	kind    opKind
	gen     uint64
	query   string
	release func()
}

// NotesStore holds the client's copy of the notes list and keeps it in sync
// with the notes API. Every operation issues exactly one request, waits for
// it and then patches the local list; the list is never re-fetched after a
// mutation. Outcomes are reported to the [notify.Notifier].
//
// Operations block and are safe to call from several goroutines at once.
// Mutations of the same note id are applied in call order.
type NotesStore struct {
	api      adapter.NotesAdapter
	notifier notify.Notifier
	logger   *logger.Logger
	locks    *keyLock

	mu       sync.Mutex
	notes    []models.Note
	loading  int
	mutating int
	query    string

	gen    uint64
	scope  context.Context
	cancel context.CancelFunc
	closed bool

	subs    map[int]chan State
	nextSub int
}

// NewNotesStore returns a store with no notes loaded.
func NewNotesStore(api adapter.NotesAdapter, notifier notify.Notifier, log *logger.Logger) *NotesStore {
	scope, cancel := context.WithCancel(context.Background())
	return &NotesStore{
		api:      api,
		notifier: notifier,
		logger:   log,
		locks:    newKeyLock(),
		scope:    scope,
		cancel:   cancel,
		subs:     make(map[int]chan State),
	}
}

// Load fetches the notes matching the current search query and replaces the
// list with them, pinned notes first. On failure the list is left as it was.
func (s *NotesStore) Load(ctx context.Context) {
	op, err := s.begin(ctx, opLoad)
	if err != nil {
		s.reject("Load", err)
		return
	}

	notes, err := s.api.ListNotes(op.ctx, op.query)
	if err != nil {
		s.fail(op, "Load", err)
		return
	}

	loaded := cloneNotes(notes)
	if loaded == nil {
		loaded = []models.Note{}
	}
	sortPinnedFirst(loaded)

	if !s.commit(op, func() { s.notes = loaded }) {
		s.discarded(op, "Load")
		return
	}

	s.logger.Debug().
		Str("func", "NotesStore.Load").
		Str("keyword", op.query).
		Int("count", len(loaded)).
		Msg("notes loaded")
}

// Create adds a note and appends the server's copy to the list. It reports
// whether the note was created.
func (s *NotesStore) Create(ctx context.Context, title, description string, tags []string) bool {
	op, err := s.begin(ctx, opMutate)
	if err != nil {
		s.reject("Create", err)
		return false
	}

	note, err := s.api.CreateNote(op.ctx, newNoteRequest(title, description, tags))
	if err != nil {
		s.fail(op, "Create", err)
		return false
	}

	if !s.commit(op, func() { s.notes = append(s.notes, note) }) {
		s.discarded(op, "Create")
		return false
	}

	s.logger.Debug().Str("func", "NotesStore.Create").Str("note_id", note.ID).Msg("note created")
	s.notifier.Success(MsgNoteCreated)
	return true
}

// Delete removes the note id. Entries with another id are untouched; an id
// that is not in the list is a no-op locally.
func (s *NotesStore) Delete(ctx context.Context, id string) {
	op, err := s.begin(ctx, opDelete)
	if err != nil {
		s.reject("Delete", err)
		return
	}

	unlock, err := s.locks.Lock(op.ctx, id)
	if err != nil {
		s.fail(op, "Delete", err)
		return
	}
	defer unlock()

	if err = s.api.DeleteNote(op.ctx, id); err != nil {
		s.fail(op, "Delete", err)
		return
	}

	if !s.commit(op, func() { s.notes = removeByID(s.notes, id) }) {
		s.discarded(op, "Delete")
		return
	}

	s.logger.Debug().Str("func", "NotesStore.Delete").Str("note_id", id).Msg("note deleted")
	s.notifier.Success(MsgNoteDeleted)
}

// Update replaces title, description and tags of the note id and swaps the
// list entry for the server's copy. It reports whether the update succeeded.
func (s *NotesStore) Update(ctx context.Context, id, title, description string, tags []string) bool {
	op, err := s.begin(ctx, opMutate)
	if err != nil {
		s.reject("Update", err)
		return false
	}

	unlock, err := s.locks.Lock(op.ctx, id)
	if err != nil {
		s.fail(op, "Update", err)
		return false
	}
	defer unlock()

	note, err := s.api.UpdateNote(op.ctx, id, newNoteRequest(title, description, tags))
	if err != nil {
		s.fail(op, "Update", err)
		return false
	}

	if !s.commit(op, func() { replaceByID(s.notes, id, note) }) {
		s.discarded(op, "Update")
		return false
	}

	s.logger.Debug().Str("func", "NotesStore.Update").Str("note_id", id).Msg("note updated")
	s.notifier.Success(MsgNoteUpdated)
	return true
}

// SetPinned changes only the pin flag of the note id. The list is not
// re-sorted. It reports whether the change succeeded.
func (s *NotesStore) SetPinned(ctx context.Context, id string, pinned bool) bool {
	op, err := s.begin(ctx, opMutate)
	if err != nil {
		s.reject("SetPinned", err)
		return false
	}

	unlock, err := s.locks.Lock(op.ctx, id)
	if err != nil {
		s.fail(op, "SetPinned", err)
		return false
	}
	defer unlock()

	note, err := s.api.SetPinned(op.ctx, id, pinned)
	if err != nil {
		s.fail(op, "SetPinned", err)
		return false
	}

	if !s.commit(op, func() { replaceByID(s.notes, id, note) }) {
		s.discarded(op, "SetPinned")
		return false
	}

	s.logger.Debug().Str("func", "NotesStore.SetPinned").Str("note_id", id).Bool("pinned", pinned).Msg("note pin changed")
	if pinned {
		s.notifier.Success(MsgNotePinned)
	} else {
		s.notifier.Success(MsgNoteUnpinned)
	}
	return true
}

// SetSearchQuery sets the keyword used by the next Load.
func (s *NotesStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.query == query {
		return
	}
	s.query = query
	s.publishLocked()
}

// State returns a snapshot of the store.
func (s *NotesStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel that always holds the latest state: it starts
// with the current snapshot and a reader that falls behind only sees the
// newest one. The returned function ends the subscription and closes the
// channel.
func (s *NotesStore) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snapshotLocked()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// Reset forgets the list and cancels every request in flight. Results of
// those requests are dropped without notifications. The search query is
// kept.
func (s *NotesStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.restartScopeLocked()
	s.publishLocked()

	s.logger.Debug().Str("func", "NotesStore.Reset").Uint64("generation", s.gen).Msg("notes store reset")
}

// Close cancels every request in flight and closes all subscriptions.
// Operations started afterwards do nothing.
func (s *NotesStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.restartScopeLocked()
	s.cancel()
	s.closed = true

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *NotesStore) restartScopeLocked() {
	s.cancel()
	s.gen++
	s.scope, s.cancel = context.WithCancel(context.Background())
	s.notes = nil
	s.loading = 0
	s.mutating = 0
}

// begin registers a new operation. The operation's context is cancelled when
// either ctx or the store's session scope is done.
func (s *NotesStore) begin(ctx context.Context, kind opKind) (*operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if kind != opLoad && s.notes == nil {
		return nil, ErrNotesNotLoaded
	}

	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.scope, cancel)

	op := &operation{
		ctx:   reqCtx,
		kind:  kind,
		gen:   s.gen,
		query: s.query,
		release: func() {
			stop()
			cancel()
		},
	}

	if s.track(kind, 1) {
		s.publishLocked()
	}
	return op, nil
}

// commit applies the result of op unless the session was reset since op
// began. It reports whether the result was applied.
func (s *NotesStore) commit(op *operation, apply func()) bool {
	defer op.release()

	s.mu.Lock()
	defer s.mu.Unlock()

	if op.gen != s.gen {
		return false
	}
	if apply != nil {
		apply()
	}
	s.track(op.kind, -1)
	s.publishLocked()
	return true
}

// fail finishes op after a failed request and reports the failure to the
// user. Cancelled operations and operations of a previous session are
// dropped silently.
func (s *NotesStore) fail(op *operation, fn string, err error) {
	if !s.commit(op, nil) {
		s.discarded(op, fn)
		return
	}

	if errors.Is(err, context.Canceled) {
		s.logger.Debug().Err(err).Str("func", "NotesStore."+fn).Msg("notes request cancelled")
		return
	}

	s.logger.Warn().Err(err).Str("func", "NotesStore."+fn).Msg("notes request failed")
	s.notifier.Error(adapter.MessageOf(err))
}

// reject reports an operation that was refused before any request was sent.
func (s *NotesStore) reject(fn string, err error) {
	if errors.Is(err, ErrNotesNotLoaded) {
		s.logger.Warn().Err(err).Str("func", "NotesStore."+fn).Msg("operation rejected")
		s.notifier.Error(MsgNotesNotLoaded)
		return
	}
	s.logger.Debug().Err(err).Str("func", "NotesStore."+fn).Msg("operation rejected")
}

func (s *NotesStore) discarded(op *operation, fn string) {
	s.logger.Debug().
		Str("func", "NotesStore."+fn).
		Uint64("generation", op.gen).
		Msg("result of a previous session discarded")
}

// track adjusts the in-flight counter of kind and reports whether a flag is
// affected.
func (s *NotesStore) track(kind opKind, delta int) bool {
	switch kind {
	case opLoad:
		s.loading += delta
	case opMutate:
		s.mutating += delta
	default:
		return false
	}
	return true
}

func (s *NotesStore) snapshotLocked() State {
	return State{
		Notes:       cloneNotes(s.notes),
		IsLoading:   s.loading > 0,
		IsMutating:  s.mutating > 0,
		SearchQuery: s.query,
	}
}

// publishLocked replaces the pending state of every subscriber with the
// current one. It never blocks: s.mu is held, so no other send can refill a
// buffer between the drain and the send.
func (s *NotesStore) publishLocked() {
	state := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

func newNoteRequest(title, description string, tags []string) models.NoteRequest {
	// tags always go on the wire as a list, never null
	copied := make([]string, len(tags))
	copy(copied, tags)

	return models.NoteRequest{
		Title:       title,
		Description: description,
		Tags:        copied,
	}
}
