// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/pin"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// accountService is the default implementation of [AccountService].
type accountService struct {
	repo            store.AccountRepository
	generator       *pin.Generator
	startingBalance decimal.Decimal
}

// NewAccountService constructs an [AccountService] that issues PINs from
// generator and opens every new account with startingBalance.
func NewAccountService(repo store.AccountRepository, generator *pin.Generator, startingBalance decimal.Decimal) AccountService {
	return &accountService{
		repo:            repo,
		generator:       generator,
		startingBalance: startingBalance,
	}
}

// Create implements [AccountService].
func (s *accountService) Create(ctx context.Context, username string, pinLength int) (models.Account, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if !validUsername(username) {
		return models.Account{}, ErrInvalidUsername
	}
	if s.repo.Exists(ctx, username) {
		return models.Account{}, store.ErrAccountAlreadyExists
	}

	generated, err := s.generator.Generate(pinLength)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Username: username,
		PIN:      generated,
		Balance:  s.startingBalance,
	}

	if err := s.repo.Add(ctx, account); err != nil {
		return models.Account{}, err
	}

	log.Info().Str("username", username).Int("pin_length", pinLength).Msg("account created")
	return account, nil
}

// Withdraw implements [AccountService]. The balance never goes negative: a
// withdrawal exceeding it is rejected without mutation.
func (s *accountService) Withdraw(ctx context.Context, username string, amount decimal.Decimal) (models.Receipt, error) {
	log := logger.FromContext(ctx)

	if !amount.IsPositive() {
		return models.Receipt{}, ErrInvalidAmount
	}

	account, err := s.repo.Get(ctx, username)
	if err != nil {
		return models.Receipt{}, err
	}
	if amount.GreaterThan(account.Balance) {
		return models.Receipt{}, ErrInsufficientFunds
	}

	account.Balance = account.Balance.Sub(amount)
	if err := s.repo.Update(ctx, account); err != nil {
		return models.Receipt{}, err
	}

	receipt := newReceipt(username, models.OperationWithdraw, amount, account.Balance)
	log.Info().
		Str("username", username).
		Str("receipt_id", receipt.ID).
		Str("amount", amount.StringFixed(2)).
		Msg("withdrawal completed")

	return receipt, nil
}

// Deposit implements [AccountService].
func (s *accountService) Deposit(ctx context.Context, username string, amount decimal.Decimal) (models.Receipt, error) {
	log := logger.FromContext(ctx)

	if !amount.IsPositive() {
		return models.Receipt{}, ErrInvalidAmount
	}

	account, err := s.repo.Get(ctx, username)
	if err != nil {
		return models.Receipt{}, err
	}

	account.Balance = account.Balance.Add(amount)
	if err := s.repo.Update(ctx, account); err != nil {
		return models.Receipt{}, err
	}

	receipt := newReceipt(username, models.OperationDeposit, amount, account.Balance)
	log.Info().
		Str("username", username).
		Str("receipt_id", receipt.ID).
		Str("amount", amount.StringFixed(2)).
		Msg("deposit completed")

	return receipt, nil
}

// Get implements [AccountService].
func (s *accountService) Get(ctx context.Context, username string) (models.Account, error) {
	return s.repo.Get(ctx, username)
}

// List implements [AccountService]. PINs never leave the service layer; the
// admin view only sees username, balance and the locked flag.
func (s *accountService) List(ctx context.Context) ([]models.AccountSummary, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, account.Summary())
	}

	return summaries, nil
}

func newReceipt(username string, op models.OperationKind, amount, newBalance decimal.Decimal) models.Receipt {
	return models.Receipt{
		ID:         uuid.NewString(),
		Username:   username,
		Operation:  op,
		Amount:     amount,
		NewBalance: newBalance,
		CreatedAt:  time.Now(),
	}
}

// validUsername rejects names the record format cannot carry: empty
// strings, the field delimiter, and control characters (which would break
// the line-oriented store file).
func validUsername(username string) bool {
	if username == "" {
		return false
	}
	for _, r := range username {
		if r == '|' || r < 0x20 {
			return false
		}
	}
	return true
}
