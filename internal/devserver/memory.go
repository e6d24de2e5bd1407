// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// IDGenerator produces note identifiers.
type IDGenerator interface {
	Generate() string
}

// MemoryNotes is the in-memory [NotesBackend]. It is safe for concurrent use.
type MemoryNotes struct {
	mu    sync.RWMutex
	notes map[string][]models.Note

	ids       IDGenerator
	validator validators.Validator

	logger *logger.Logger
}

var _ NotesBackend = (*MemoryNotes)(nil)

// NewMemoryNotes creates an empty backend. A nil ids uses UUIDv7 ids.
func NewMemoryNotes(ids IDGenerator, validator validators.Validator, log *logger.Logger) *MemoryNotes {
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}
	if validator == nil {
		validator = validators.NewNoteValidator()
	}

	return &MemoryNotes{
		notes:     make(map[string][]models.Note),
		ids:       ids,
		validator: validator,
		logger:    log,
	}
}

func (m *MemoryNotes) List(ctx context.Context, owner, keyword string) ([]models.Note, error) {
	if err := checkRequest(ctx, owner); err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Note, 0, len(m.notes[owner]))
	for _, n := range m.notes[owner] {
		if keyword == "" || matches(n, keyword) {
			out = append(out, n.Clone())
		}
	}

	return out, nil
}

func (m *MemoryNotes) Create(ctx context.Context, owner string, req models.NoteRequest) (models.Note, error) {
	if err := checkRequest(ctx, owner); err != nil {
		return models.Note{}, err
	}
	if err := m.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note := models.Note{
		ID:          m.ids.Generate(),
		Title:       req.Title,
		Description: req.Description,
		Tags:        normalizeTags(req.Tags),
	}

	m.mu.Lock()
	m.notes[owner] = append(m.notes[owner], note)
	m.mu.Unlock()

	m.logger.Debug().Str("func", "*MemoryNotes.Create").Str("owner", owner).Str("id", note.ID).Msg("note created")

	return note.Clone(), nil
}

func (m *MemoryNotes) Update(ctx context.Context, owner, id string, req models.NoteRequest) (models.Note, error) {
	if err := checkRequest(ctx, owner); err != nil {
		return models.Note{}, err
	}
	if err := m.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return m.modify(owner, id, func(n *models.Note) {
		n.Title = req.Title
		n.Description = req.Description
		n.Tags = normalizeTags(req.Tags)
	})
}

func (m *MemoryNotes) SetPinned(ctx context.Context, owner, id string, pinned bool) (models.Note, error) {
	if err := checkRequest(ctx, owner); err != nil {
		return models.Note{}, err
	}

	return m.modify(owner, id, func(n *models.Note) {
		n.IsPinned = pinned
	})
}

func (m *MemoryNotes) Delete(ctx context.Context, owner, id string) (models.Note, error) {
	if err := checkRequest(ctx, owner); err != nil {
		return models.Note{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	notes := m.notes[owner]
	i := slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 {
		return models.Note{}, fmt.Errorf("delete note %q: %w", id, ErrNoteNotFound)
	}

	removed := notes[i]
	m.notes[owner] = slices.Delete(notes, i, i+1)

	m.logger.Debug().Str("func", "*MemoryNotes.Delete").Str("owner", owner).Str("id", id).Msg("note deleted")

	return removed.Clone(), nil
}

func (m *MemoryNotes) modify(owner, id string, apply func(*models.Note)) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notes := m.notes[owner]
	i := slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 {
		return models.Note{}, fmt.Errorf("modify note %q: %w", id, ErrNoteNotFound)
	}

	apply(&notes[i])

	return notes[i].Clone(), nil
}

func checkRequest(ctx context.Context, owner string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if owner == "" {
		return ErrNoOwner
	}
	return nil
}

// matches reports whether keyword (already lower-cased) occurs in the note.
func matches(n models.Note, keyword string) bool {
	if strings.Contains(strings.ToLower(n.Title), keyword) ||
		strings.Contains(strings.ToLower(n.Description), keyword) {
		return true
	}
	return slices.ContainsFunc(n.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), keyword)
	})
}

// normalizeTags copies tags and never returns nil, so the note always
// serializes an array.
func normalizeTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
