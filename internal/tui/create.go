// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pin-keeper/internal/pin"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type createStage int

const (
	createStageForm createStage = iota
	createStageReceipt
)

// CreateModel is the Bubble Tea model for the account-opening screen. The
// form collects a username and a PIN length; after a successful opening it
// switches to a receipt stage that shows the generated PIN exactly once,
// with a hotkey to copy it to the system clipboard.
type CreateModel struct {
	ctx      context.Context
	accounts service.AccountService

	stage      createStage
	username   textinput.Model
	pinLengths []int
	lengthIdx  int
	onUsername bool
	submitting bool
	errMsg     string

	created models.Account
	status  string
}

// NewCreateModel creates a [CreateModel] with the username input focused
// and the short PIN length pre-selected.
func NewCreateModel(ctx context.Context, accounts service.AccountService) *CreateModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 20
	usernameInput.Width = 40
	usernameInput.Focus()

	return &CreateModel{
		ctx:        ctx,
		accounts:   accounts,
		username:   usernameInput,
		pinLengths: []int{pin.LengthShort, pin.LengthLong},
		onUsername: true,
	}
}

func (m *CreateModel) Init() tea.Cmd {
	m.stage = createStageForm
	m.username.SetValue("")
	m.username.Focus()
	m.onUsername = true
	m.lengthIdx = 0
	m.submitting = false
	m.errMsg = ""
	m.status = ""
	return textinput.Blink
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.created = msg.account
		m.stage = createStageReceipt
		m.errMsg = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Clipboard unavailable: " + msg.err.Error()
		} else {
			m.status = "PIN copied to clipboard"
		}
		return m, nil
	}

	if m.stage == createStageReceipt {
		return m.updateReceipt(msg)
	}
	return m.updateForm(msg)
}

func (m *CreateModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab", "shift+tab":
			m.onUsername = !m.onUsername
			if m.onUsername {
				m.username.Focus()
			} else {
				m.username.Blur()
			}
			return m, nil
		case "left", "right", "up", "down":
			if !m.onUsername {
				m.lengthIdx = (m.lengthIdx + 1) % len(m.pinLengths)
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.username.Value())
			if username == "" {
				m.errMsg = "Username is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdCreate(username, m.pinLengths[m.lengthIdx])
		}
	}

	if m.onUsername {
		var cmd tea.Cmd
		m.username, cmd = m.username.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *CreateModel) updateReceipt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "c":
		return m, m.cmdCopyPIN(m.created.PIN)
	case "enter", "esc":
		username := m.created.Username
		// The issued PIN is dropped from the model once the receipt is
		// dismissed.
		m.created = models.Account{}
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: AccountCreatedNotice{Username: username}}
		}
	}

	return m, nil
}

func (m *CreateModel) View() string {
	if m.stage == createStageReceipt {
		return m.viewReceipt()
	}
	return m.viewForm()
}

func (m *CreateModel) viewForm() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼──────────────────────────────────────────\n")
	b.WriteString("Username   │ [")
	b.WriteString(m.username.View())
	b.WriteString("]\n")

	b.WriteString("PIN length │ ")
	for i, l := range m.pinLengths {
		marker := "  "
		if i == m.lengthIdx {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%d digits  ", marker, l))
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Opening...]\n")
	} else {
		b.WriteString("\n[Open account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("OPEN ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: switch field │ ←/→: pin length │ enter: confirm")
}

func (m *CreateModel) viewReceipt() string {
	var b strings.Builder
	b.WriteString("Account opened.\n\n")
	b.WriteString("Username │ " + m.created.Username + "\n")
	b.WriteString("PIN      │ " + m.created.PIN + "\n")
	b.WriteString("Balance  │ " + m.created.Balance.StringFixed(2) + "\n\n")
	b.WriteString("Write the PIN down now. It is shown only once\n")
	b.WriteString("and is never displayed again.")

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("YOUR NEW PIN", b.String(), "c: copy PIN │ enter: done")
}

func (m *CreateModel) cmdCreate(username string, pinLength int) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		account, err := accounts.Create(ctx, username, pinLength)
		return accountCreatedMsg{account: account, err: err}
	}
}

func (m *CreateModel) cmdCopyPIN(pinValue string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(pinValue)}
	}
}
