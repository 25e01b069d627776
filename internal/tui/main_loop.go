package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type sessionStage int

const (
	stageMenu sessionStage = iota
	stageWithdraw
	stageDeposit
	stageChangePIN
	stageReceipt
)

var errUsernameNotSet = errors.New("session username not set")

// mainLoopModel drives the logged-in session: balance display, teller
// operations, PIN change, and logout. It always re-reads the account before
// rendering the menu so the balance reflects the last completed operation.
type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	username string

	account models.Account
	loading bool
	errMsg  string
	status  string

	stage   sessionStage
	menuIdx int

	amountInput textinput.Model

	pinInputs     []textinput.Model
	pinFocus      int
	pinSubmitting bool

	lastReceipt models.Receipt

	logout bool
}

var sessionMenuItems = []string{
	"Balance",
	"Withdraw cash",
	"Deposit cash",
	"Change PIN",
	"Log out",
}

func newMainLoopModel(ctx context.Context, services *service.Services, username string) mainLoopModel {
	effectiveUsername := username
	if effectiveUsername == "" {
		effectiveUsername = getSessionUsername()
	}
	if effectiveUsername != "" {
		setSessionUsername(effectiveUsername)
	}

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Width = 20

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		username:    effectiveUsername,
		loading:     true,
		amountInput: amount,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadAccount()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey, independent of the active stage.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case accountLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.account = msg.account
		return m, nil
	case receiptMsg:
		if msg.err != nil {
			m.errMsg = humanizeTellerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.lastReceipt = msg.receipt
		m.stage = stageReceipt
		m.amountInput.SetValue("")
		return m, m.cmdLoadAccount()
	case pinChangedMsg:
		m.pinSubmitting = false
		if msg.err != nil {
			// Locking the account mid-session ends the session.
			if errors.Is(msg.err, service.ErrAccountLocked) {
				m.logout = true
				return m, tea.Quit
			}
			m.errMsg = humanizeChangePINError(msg.err)
			// A wrong current PIN burned an attempt; the menu shows the
			// refreshed state.
			if errors.Is(msg.err, service.ErrWrongPIN) {
				m.stage = stageMenu
				return m, m.cmdLoadAccount()
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = "PIN changed successfully"
		m.stage = stageMenu
		return m, m.cmdLoadAccount()
	}

	switch m.stage {
	case stageWithdraw, stageDeposit:
		return m.updateAmountForm(msg)
	case stageChangePIN:
		return m.updateChangePIN(msg)
	case stageReceipt:
		return m.updateReceipt(msg)
	}
	return m.updateMenu(msg)
}

func (m mainLoopModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(sessionMenuItems)-1 {
			m.menuIdx++
		}
	case "l":
		m.logout = true
		return m, tea.Quit
	case "enter":
		m.errMsg = ""
		m.status = ""
		switch m.menuIdx {
		case 0:
			return m, m.cmdLoadAccount()
		case 1:
			m.stage = stageWithdraw
			m.amountInput.SetValue("")
			m.amountInput.Focus()
			return m, textinput.Blink
		case 2:
			m.stage = stageDeposit
			m.amountInput.SetValue("")
			m.amountInput.Focus()
			return m, textinput.Blink
		case 3:
			m.startChangePIN()
			return m, textinput.Blink
		case 4:
			m.logout = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m mainLoopModel) updateAmountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.stage = stageMenu
			m.errMsg = ""
			return m, nil
		case "enter":
			raw := strings.TrimSpace(m.amountInput.Value())
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				m.errMsg = "Amount must be a positive number."
				return m, nil
			}

			if m.stage == stageWithdraw {
				return m, m.cmdWithdraw(amount)
			}
			return m, m.cmdDeposit(amount)
		}
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateChangePIN(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.stage = stageMenu
			m.errMsg = ""
			m.pinSubmitting = false
			return m, nil
		case "tab":
			m.pinFocusNext()
			return m, nil
		case "shift+tab":
			m.pinFocusPrev()
			return m, nil
		case "enter":
			if m.pinSubmitting {
				return m, nil
			}

			current := m.pinInputs[0].Value()
			next := m.pinInputs[1].Value()
			if current == "" || next == "" {
				m.errMsg = "Both PINs are required"
				return m, nil
			}

			m.errMsg = ""
			m.pinSubmitting = true
			return m, m.cmdChangePIN(current, next)
		}
	}

	var cmd tea.Cmd
	m.pinInputs[m.pinFocus], cmd = m.pinInputs[m.pinFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateReceipt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "esc":
		m.stage = stageMenu
	}
	return m, nil
}

func (m *mainLoopModel) startChangePIN() {
	current := textinput.New()
	current.Placeholder = "current PIN"
	current.CharLimit = 6
	current.Width = 20
	current.EchoMode = textinput.EchoPassword
	current.EchoCharacter = '*'
	current.Focus()

	next := textinput.New()
	next.Placeholder = "new PIN"
	next.CharLimit = 6
	next.Width = 20
	next.EchoMode = textinput.EchoPassword
	next.EchoCharacter = '*'

	m.pinInputs = []textinput.Model{current, next}
	m.pinFocus = 0
	m.pinSubmitting = false
	m.stage = stageChangePIN
	m.errMsg = ""
}

func (m *mainLoopModel) pinFocusNext() {
	m.pinInputs[m.pinFocus].Blur()
	m.pinFocus = (m.pinFocus + 1) % len(m.pinInputs)
	m.pinInputs[m.pinFocus].Focus()
}

func (m *mainLoopModel) pinFocusPrev() {
	m.pinInputs[m.pinFocus].Blur()
	m.pinFocus = (m.pinFocus - 1 + len(m.pinInputs)) % len(m.pinInputs)
	m.pinInputs[m.pinFocus].Focus()
}

func (m mainLoopModel) View() string {
	switch m.stage {
	case stageWithdraw:
		return m.viewAmountForm("WITHDRAW CASH")
	case stageDeposit:
		return m.viewAmountForm("DEPOSIT CASH")
	case stageChangePIN:
		return m.viewChangePIN()
	case stageReceipt:
		return m.viewReceipt()
	}
	return m.viewMenu()
}

func (m mainLoopModel) viewMenu() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading account...\n\n")
	} else {
		b.WriteString(fmt.Sprintf("Account │ %s\n", m.account.Username))
		b.WriteString(fmt.Sprintf("Balance │ %s\n\n", m.account.Balance.StringFixed(2)))
	}

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	for i, item := range sessionMenuItems {
		cursor := "  "
		if i == m.menuIdx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	return renderPage("ATM SESSION", strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate │ l: log out")
}

func (m mainLoopModel) viewAmountForm(title string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Balance │ %s\n\n", m.account.Balance.StringFixed(2)))
	b.WriteString("Amount  │ [")
	b.WriteString(m.amountInput.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ enter: confirm")
}

func (m mainLoopModel) viewChangePIN() string {
	var b strings.Builder
	b.WriteString("Current PIN │ [")
	b.WriteString(m.pinInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("New PIN     │ [")
	b.WriteString(m.pinInputs[1].View())
	b.WriteString("]\n")

	if m.pinSubmitting {
		b.WriteString("\n[Changing...]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CHANGE PIN", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: confirm")
}

func (m mainLoopModel) viewReceipt() string {
	r := m.lastReceipt
	operation := "Withdrawal"
	if r.Operation == models.OperationDeposit {
		operation = "Deposit"
	}

	var b strings.Builder
	b.WriteString("Receipt  │ " + r.ID + "\n")
	b.WriteString("Account  │ " + r.Username + "\n")
	b.WriteString("Operation│ " + operation + "\n")
	b.WriteString("Amount   │ " + r.Amount.StringFixed(2) + "\n")
	b.WriteString("Balance  │ " + r.NewBalance.StringFixed(2) + "\n")
	b.WriteString("Time     │ " + r.CreatedAt.Format("2006-01-02 15:04:05"))

	return renderPage("RECEIPT", b.String(), "enter: back to menu")
}

func (m mainLoopModel) cmdLoadAccount() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService

	return func() tea.Msg {
		username := m.activeUsername()
		if username == "" {
			return accountLoadedMsg{err: errUsernameNotSet}
		}
		account, err := svc.Get(ctx, username)
		return accountLoadedMsg{account: account, err: err}
	}
}

func (m mainLoopModel) cmdWithdraw(amount decimal.Decimal) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService

	return func() tea.Msg {
		username := m.activeUsername()
		if username == "" {
			return receiptMsg{err: errUsernameNotSet}
		}
		receipt, err := svc.Withdraw(ctx, username, amount)
		return receiptMsg{receipt: receipt, err: err}
	}
}

func (m mainLoopModel) cmdDeposit(amount decimal.Decimal) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService

	return func() tea.Msg {
		username := m.activeUsername()
		if username == "" {
			return receiptMsg{err: errUsernameNotSet}
		}
		receipt, err := svc.Deposit(ctx, username, amount)
		return receiptMsg{receipt: receipt, err: err}
	}
}

func (m mainLoopModel) cmdChangePIN(currentPIN, newPIN string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuthService

	return func() tea.Msg {
		username := m.activeUsername()
		if username == "" {
			return pinChangedMsg{err: errUsernameNotSet}
		}
		err := svc.ChangePIN(ctx, username, currentPIN, newPIN)
		return pinChangedMsg{err: err}
	}
}

func (m mainLoopModel) activeUsername() string {
	if s := getSessionUsername(); s != "" {
		return s
	}
	return m.username
}
