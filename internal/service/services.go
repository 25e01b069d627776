package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/pin"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
)

// Services groups the application services into a single value that can be
// passed to the terminal UI.
type Services struct {
	AuthService    AuthService
	AccountService AccountService
}

// NewServices wires the service layer from the account repository and the
// application configuration: the PIN generator draws from the OS CSPRNG and
// refuses the configured banned set, the auth service enforces the
// configured attempts ceiling, and new accounts open with the configured
// starting balance.
func NewServices(repo store.AccountRepository, cfg config.App, log *logger.Logger) (*Services, error) {
	log.Debug().Msg("creating services")

	startingBalance, err := decimal.NewFromString(cfg.StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("parse starting balance %q: %w", cfg.StartingBalance, err)
	}

	generator := pin.NewGenerator(pin.NewCryptoDigitSource(), cfg.BannedPINs, cfg.GeneratorMaxRetries)

	return &Services{
		AuthService:    NewAuthService(repo, cfg.MaxWrongAttempts),
		AccountService: NewAccountService(repo, generator, startingBalance),
	}, nil
}
