package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, when
// non-nil, is delivered to the target page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an authentication attempt. A nil Err means the
// session opens for Username.
type LoginResult struct {
	Username string
	Err      error
}

// AccountCreatedNotice is shown on the menu after a successful account
// opening.
type AccountCreatedNotice struct {
	Username string
}

type accountCreatedMsg struct {
	account models.Account
	err     error
}

type accountLoadedMsg struct {
	account models.Account
	err     error
}

type receiptMsg struct {
	receipt models.Receipt
	err     error
}

type pinChangedMsg struct {
	err error
}

type summariesLoadedMsg struct {
	summaries []models.AccountSummary
	err       error
}

type copiedMsg struct {
	err error
}
