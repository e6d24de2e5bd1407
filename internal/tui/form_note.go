// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldTags
	formFieldCount
)

// formNoteModel creates a note, or edits the note id when editing is set.
type formNoteModel struct {
	title       textinput.Model
	description textarea.Model
	tags        textinput.Model
	focus       int

	editing    bool
	id         string
	submitting bool
	// seq identifies the latest submission of this form
	seq int
}

func newFormNoteModel(note *models.Note) formNoteModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.Width = 50
	title.CharLimit = 256

	description := textarea.New()
	description.Placeholder = "description"
	description.SetWidth(52)
	description.SetHeight(6)
	description.CharLimit = 0

	tags := textinput.New()
	tags.Placeholder = "tag1, tag2"
	tags.Width = 50

	m := formNoteModel{title: title, description: description, tags: tags}
	if note != nil {
		m.editing = true
		m.id = note.ID
		m.title.SetValue(note.Title)
		m.description.SetValue(note.Description)
		m.tags.SetValue(joinTags(note.Tags))
	}
	m.applyFocus()
	return m
}

func (m formNoteModel) values() (title, description string, tags []string) {
	return strings.TrimSpace(m.title.Value()), m.description.Value(), parseTags(m.tags.Value())
}

func (m *formNoteModel) focusNext() {
	m.focus = (m.focus + 1) % formFieldCount
	m.applyFocus()
}

func (m *formNoteModel) focusPrev() {
	m.focus = (m.focus - 1 + formFieldCount) % formFieldCount
	m.applyFocus()
}

func (m *formNoteModel) applyFocus() {
	m.title.Blur()
	m.description.Blur()
	m.tags.Blur()

	switch m.focus {
	case formFieldTitle:
		m.title.Focus()
	case formFieldDescription:
		m.description.Focus()
	case formFieldTags:
		m.tags.Focus()
	}
}

// update forwards msg to the focused field.
func (m formNoteModel) update(msg tea.Msg) (formNoteModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case formFieldTitle:
		m.title, cmd = m.title.Update(msg)
	case formFieldDescription:
		m.description, cmd = m.description.Update(msg)
	case formFieldTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return m, cmd
}

func (m formNoteModel) View() string {
	title := "NEW NOTE"
	if m.editing {
		title = "EDIT: " + fitText(m.title.Value(), listTitleWidth)
	}

	var b strings.Builder
	b.WriteString("Title:\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\nDescription:\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\nTags:\n")
	b.WriteString(m.tags.View())

	if m.submitting {
		b.WriteString("\n\n[Saving...]")
	}

	return renderPage(title, b.String(), "tab next field │ ctrl+s save │ enter save (title, tags) │ esc cancel")
}
