// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/auth"
	"github.com/MKhiriev/go-notes-keeper/internal/notify"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastTTL  = 4 * time.Second
	statusTTL = 2 * time.Second
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenForm
)

type appDeps struct {
	notes     NotesService
	session   SessionService
	states    <-chan service.State
	toasts    <-chan notify.Toast
	copyText  func(string) error
	buildInfo models.AppBuildInfo
}

type appModel struct {
	ctx context.Context
	appDeps

	currentScreen screen
	state         service.State

	login  loginModel
	list   listModel
	detail detailModel
	form   formNoteModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	toast    notify.Toast
	toastSeq int

	submitSeq int

	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, deps appDeps) appModel {
	m := appModel{
		ctx:           ctx,
		appDeps:       deps,
		currentScreen: screenLogin,
		state:         deps.notes.State(),
		login:         newLoginModel(),
		list:          newListModel(),
	}
	if deps.session.LoggedIn() {
		m.currentScreen = screenList
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.states),
		waitForToast(m.toasts),
		m.list.spinner.Tick,
		textinput.Blink,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		m.list.clamp(len(m.state.Notes))
		return m, waitForState(m.states)
	case toastMsg:
		m.toast = msg.toast
		m.toastSeq++
		return m, tea.Batch(waitForToast(m.toasts), cmdClearToast(m.toastSeq))
	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = notify.Toast{}
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeLoginError(msg.err)
			return m, nil
		}
		m.login = newLoginModel()
		m.list.idx = 0
		m.currentScreen = screenList
		return m, nil
	case logoutDoneMsg:
		m.login = newLoginModel()
		if msg.err != nil {
			m.login.errMsg = "logout: " + msg.err.Error()
		}
		m.showConfirm = false
		m.pendingDelete = ""
		m.currentScreen = screenLogin
		return m, textinput.Blink
	case formDoneMsg:
		// results of a form that was left or replaced are ignored
		if m.currentScreen != screenForm || msg.seq != m.form.seq {
			return m, nil
		}
		m.form.submitting = false
		if msg.ok {
			m.currentScreen = m.backFromForm()
		}
		return m, nil
	case copiedMsg:
		status := "Copied!"
		if msg.err != nil {
			status = "Copy failed: " + msg.err.Error()
		}
		m.detail.status = status
		m.list.status = status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case opDoneMsg:
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View(m.state, m.session.Subject())
	case screenDetail:
		body = m.detail.View(m.state)
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.toast.Message != "" {
		body += "\n\n" + renderToast(m.toast)
	}

	return appStyle.Render(body)
}

func renderToast(t notify.Toast) string {
	if t.Kind == notify.KindError {
		return errorStyle.Render("✗ " + t.Message)
	}
	return successStyle.Render("✓ " + t.Message)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.pendingDelete
		m.showConfirm = false
		m.pendingDelete = ""
		if id == "" {
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			token := m.login.token()
			if token == "" {
				m.login.errMsg = humanizeLoginError(auth.ErrEmptyToken)
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(token)
		}
	}

	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	note, hasNote := m.list.current(m.state)

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.state.Notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if hasNote {
			m.detail = detailModel{id: note.ID}
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.SetValue(m.state.SearchQuery)
		return m, m.list.search.Focus()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.newNote):
		return m.openForm(nil)
	case key.Matches(keyMsg, keys.edit):
		if hasNote {
			return m.openForm(&note)
		}
	case key.Matches(keyMsg, keys.pin):
		if hasNote {
			return m, m.cmdSetPinned(note.ID, !note.IsPinned)
		}
	case key.Matches(keyMsg, keys.delete):
		if hasNote {
			m.askDelete(note)
		}
	case key.Matches(keyMsg, keys.copy):
		if hasNote {
			return m, m.cmdCopy(note.Description)
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			m.list.idx = 0
			m.notes.SetSearchQuery(strings.TrimSpace(m.list.search.Value()))
			return m, m.cmdLoad()
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.SetValue(m.state.SearchQuery)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	note, hasNote := m.state.Find(m.detail.id)

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		if hasNote {
			return m.openForm(&note)
		}
	case key.Matches(keyMsg, keys.pin):
		if hasNote {
			return m, m.cmdSetPinned(note.ID, !note.IsPinned)
		}
	case key.Matches(keyMsg, keys.delete):
		if hasNote {
			m.askDelete(note)
		}
	case key.Matches(keyMsg, keys.copy):
		if hasNote {
			return m, m.cmdCopy(note.Description)
		}
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form.submitting = false
			m.currentScreen = m.backFromForm()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.save),
			key.Matches(keyMsg, keys.enter) && m.form.focus != formFieldDescription:
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) openForm(note *models.Note) (tea.Model, tea.Cmd) {
	m.form = newFormNoteModel(note)
	m.currentScreen = screenForm
	return m, textinput.Blink
}

// submitForm sends the form once; the form stays open until the store
// reports success.
func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	m.form.submitting = true
	m.submitSeq++
	m.form.seq = m.submitSeq

	title, description, tags := m.form.values()
	if m.form.editing {
		return m, m.cmdUpdate(m.form.seq, m.form.id, title, description, tags)
	}
	return m, m.cmdCreate(m.form.seq, title, description, tags)
}

func (m appModel) backFromForm() screen {
	if m.form.editing {
		if _, ok := m.state.Find(m.form.id); ok && m.detail.id == m.form.id {
			return screenDetail
		}
	}
	return screenList
}

func (m *appModel) askDelete(note models.Note) {
	m.showConfirm = true
	m.confirm = confirmModel{message: fitText(note.Title, listTitleWidth)}
	m.pendingDelete = note.ID
}

func waitForState(states <-chan service.State) tea.Cmd {
	if states == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg{state: st}
	}
}

func waitForToast(toasts <-chan notify.Toast) tea.Cmd {
	if toasts == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-toasts
		if !ok {
			return nil
		}
		return toastMsg{toast: t}
	}
}

func (m appModel) cmdLogin(token string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return loginDoneMsg{err: session.Login(ctx, token)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		notes.Load(ctx)
		return opDoneMsg{}
	}
}

func (m appModel) cmdCreate(seq int, title, description string, tags []string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return formDoneMsg{seq: seq, ok: notes.Create(ctx, title, description, tags)}
	}
}

func (m appModel) cmdUpdate(seq int, id, title, description string, tags []string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return formDoneMsg{seq: seq, ok: notes.Update(ctx, id, title, description, tags)}
	}
}

func (m appModel) cmdSetPinned(id string, pinned bool) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		notes.SetPinned(ctx, id, pinned)
		return opDoneMsg{}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		notes.Delete(ctx, id)
		return opDoneMsg{}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearToast(seq int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
