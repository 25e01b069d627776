package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pin-keeper/internal/service"
)

func TestMainLoop_CtrlCQuitsSession(t *testing.T) {
	m := newMainLoopModel(context.Background(), &service.Services{}, "alice")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd, "ctrl+c must produce a quit command")
	assert.Equal(t, tea.QuitMsg{}, cmd())

	session, ok := updated.(mainLoopModel)
	require.True(t, ok)
	assert.False(t, session.logout, "ctrl+c quits the program, it is not a logout")
}

// The quit hotkey works from every stage, not only the menu.
func TestMainLoop_CtrlCQuitsFromSubStages(t *testing.T) {
	stages := []sessionStage{stageMenu, stageWithdraw, stageDeposit, stageChangePIN, stageReceipt}

	for _, stage := range stages {
		m := newMainLoopModel(context.Background(), &service.Services{}, "alice")
		m.stage = stage

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}
