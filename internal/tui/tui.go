package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// ErrUserQuit is returned when the user leaves the program from the main
// menu instead of opening a session.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the pre-session pages (menu, login, account opening,
// accounts overview) until the user authenticates or quits. It returns the
// authenticated username.
func (t *TUI) LoginFlow(ctx context.Context) (username string, err error) {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"login":  NewLoginModel(ctx, t.services.AuthService),
		"create": NewCreateModel(ctx, t.services.AccountService),
		"admin":  NewAdminModel(ctx, t.services.AccountService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.resultUsername, nil
}

// MainLoop runs the logged-in session for username. It reports whether the
// user logged out (as opposed to quitting the program).
func (t *TUI) MainLoop(ctx context.Context, username string) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, username)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		clearSessionUsername()
	}
	return result.logout, nil
}
