package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// AdminModel renders the read-only accounts overview: every account with
// its balance and lock state, sorted by username. PINs are not part of the
// projection it receives.
type AdminModel struct {
	ctx      context.Context
	accounts service.AccountService

	summaries []models.AccountSummary
	loading   bool
	errMsg    string
}

func NewAdminModel(ctx context.Context, accounts service.AccountService) *AdminModel {
	return &AdminModel{
		ctx:      ctx,
		accounts: accounts,
	}
}

func (m *AdminModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadSummaries()
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summariesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.summaries = msg.summaries
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
	}

	return m, nil
}

func (m *AdminModel) View() string {
	if m.loading {
		return renderPage("ACCOUNTS OVERVIEW", "Loading...", "esc: back")
	}
	if m.errMsg != "" {
		return renderPage("ACCOUNTS OVERVIEW", errorStyle.Render("Error: "+m.errMsg), "esc: back")
	}
	if len(m.summaries) == 0 {
		return renderPage("ACCOUNTS OVERVIEW", "No accounts yet.", "esc: back")
	}

	nameColWidth := lipgloss.Width("Username")
	for _, s := range m.summaries {
		if w := lipgloss.Width(s.Username); w > nameColWidth {
			nameColWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %10s │ %s\n", nameColWidth, "Username", "Balance", "State"))
	b.WriteString(strings.Repeat("─", nameColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 10))
	b.WriteString("─┼────────\n")

	for _, s := range m.summaries {
		state := "active"
		if s.Locked {
			state = "LOCKED"
		}
		b.WriteString(fmt.Sprintf("%-*s │ %10s │ %s\n",
			nameColWidth, fitText(s.Username, 20), s.Balance.StringFixed(2), state))
	}

	return renderPage("ACCOUNTS OVERVIEW", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m *AdminModel) cmdLoadSummaries() tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		summaries, err := accounts.List(ctx)
		return summariesLoadedMsg{summaries: summaries, err: err}
	}
}
