package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/tui"
)

// App drives the ATM terminal lifecycle: the pre-session menu runs until a
// user authenticates, the session loop runs until logout or quit, and a
// logout returns to the menu for the next user.
type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the runnable application from its pre-built parts.
func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run implements [Client]. It blocks until the user quits the program.
func (a *App) Run() error {
	ctx := logger.ContextWithLogger(context.Background(), a.logger)

	for {
		username, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				a.logger.Info().Msg("user quit from menu")
				return nil
			}
			return err
		}

		a.logger.Info().Str("username", username).Msg("session opened")

		logout, err := a.tui.MainLoop(ctx, username)
		if err != nil {
			return err
		}

		a.logger.Info().Str("username", username).Bool("logout", logout).Msg("session closed")
		if !logout {
			return nil
		}
	}
}
