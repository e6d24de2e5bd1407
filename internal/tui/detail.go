// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

// detailModel shows one note. It holds only the id; the note itself is
// looked up in the latest state so that updates show up right away.
type detailModel struct {
	id     string
	status string
}

func (m detailModel) View(st service.State) string {
	note, ok := st.Find(m.id)
	if !ok {
		return renderPage("NOTE", "The note is no longer in the list.", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Title:       ")
	b.WriteString(note.Title)
	if note.IsPinned {
		b.WriteString("  ")
		b.WriteString(pinStyle.Render("[pinned]"))
	}
	b.WriteString("\n")
	b.WriteString("Tags:        ")
	b.WriteString(valueOrDash(joinTags(note.Tags)))
	b.WriteString("\n\n")
	b.WriteString(valueOrDash(note.Description))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("NOTE", strings.TrimRight(b.String(), "\n"), "e edit │ p pin │ d delete │ c copy │ esc back")
}
