// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

const listTitleWidth = 40

type listModel struct {
	idx       int
	searching bool
	search    textinput.Model
	spinner   spinner.Model
	status    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "keyword"
	search.Prompt = "/ "
	search.Width = 40

	return listModel{spinner: s, search: search}
}

func (m listModel) current(st service.State) (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(st.Notes) {
		return models.Note{}, false
	}
	return st.Notes[m.idx], true
}

// clamp keeps the cursor inside a list of n entries.
func (m *listModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View(st service.State, subject string) string {
	var b strings.Builder

	header := "Notes"
	if subject != "" {
		header += " of " + subject
	}
	if st.SearchQuery != "" {
		header += fmt.Sprintf("  (search: %q)", st.SearchQuery)
	}
	if st.IsLoading || st.IsMutating {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case !st.Loaded():
		b.WriteString("Loading...\n")
	case len(st.Notes) == 0:
		b.WriteString("No notes\n")
	default:
		for i, note := range st.Notes {
			b.WriteString(renderListRow(note, i == m.idx))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "enter open │ / search │ r refresh │ n new │ e edit │ p pin │ d delete │ c copy │ L logout │ v about │ q quit"
	if m.searching {
		hotKeys = "enter apply │ esc cancel"
	}
	return renderPage("GO-NOTES-KEEPER", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderListRow(note models.Note, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	pin := "   "
	if note.IsPinned {
		pin = pinStyle.Render("[*]")
	}

	row := cursor + pin + " " + fitText(note.Title, listTitleWidth)
	if len(note.Tags) > 0 {
		row += "  " + tagStyle.Render("#"+strings.Join(note.Tags, " #"))
	}
	return row
}
