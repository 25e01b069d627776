// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the durable account mapping: a file of obfuscated,
// one-per-line records that is fully loaded into memory at startup and
// rewritten in full on every mutation.
package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/go-pin-keeper/internal/crypto"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// accountFileRepository is the file-backed implementation of
// [AccountRepository]. The backing file is ground truth only at
// construction; afterwards the in-memory map is authoritative and the file
// is a write target.
type accountFileRepository struct {
	logger *logger.Logger
	codec  crypto.Codec
	path   string

	accounts map[string]models.Account
}

// NewAccountFileRepository constructs an [AccountRepository] backed by the
// record file at path, decoding each line with codec. A missing file is not
// an error: the store starts empty and the file is created on the first
// mutation. Individual lines that fail to decode are logged and skipped;
// loading continues with the rest of the file.
func NewAccountFileRepository(path string, codec crypto.Codec, logger *logger.Logger) (AccountRepository, error) {
	logger.Debug().Str("path", path).Msg("creating account repository")

	r := &accountFileRepository{
		logger:   logger,
		codec:    codec,
		path:     path,
		accounts: make(map[string]models.Account),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("load account store: %w", err)
	}

	return r, nil
}

// load reads the backing file once, line by line, decoding each record and
// discarding the ones that fail to decode.
func (r *accountFileRepository) load() error {
	file, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info().Str("path", r.path).Msg("account file does not exist yet, starting empty")
			return nil
		}
		return err
	}
	defer file.Close()

	skipped := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		account, err := decodeRecord(line, r.codec)
		if err != nil {
			// One bad line must not abort loading the rest of the store.
			skipped++
			r.logger.Warn().Err(err).Msg("skipping malformed account record")
			continue
		}

		r.accounts[account.Username] = account
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	r.logger.Info().
		Int("accounts", len(r.accounts)).
		Int("skipped", skipped).
		Msg("account store loaded")

	return nil
}

// Exists implements [AccountRepository].
func (r *accountFileRepository) Exists(_ context.Context, username string) bool {
	_, ok := r.accounts[username]
	return ok
}

// Add implements [AccountRepository]. On persist failure the in-memory map
// keeps the post-mutation value; the next successful persist writes it out.
// A record that would not survive a reload ([ErrRecordNotLineSafe]) is
// rejected before the map is touched.
func (r *accountFileRepository) Add(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	if _, ok := r.accounts[account.Username]; ok {
		return ErrAccountAlreadyExists
	}

	if _, err := encodeRecord(account, r.codec); err != nil {
		log.Err(err).Str("username", account.Username).Msg("error: record rejected before add")
		return err
	}

	r.accounts[account.Username] = account
	if err := r.persist(); err != nil {
		log.Err(err).Str("username", account.Username).Msg("error: persisting after add")
		return fmt.Errorf("persist account store: %w", err)
	}

	return nil
}

// Update implements [AccountRepository]. On persist failure the in-memory
// map keeps the post-mutation value; the next successful persist writes it
// out. A record that would not survive a reload ([ErrRecordNotLineSafe]) is
// rejected before the map is touched.
func (r *accountFileRepository) Update(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	if _, ok := r.accounts[account.Username]; !ok {
		return ErrAccountNotFound
	}

	if _, err := encodeRecord(account, r.codec); err != nil {
		log.Err(err).Str("username", account.Username).Msg("error: record rejected before update")
		return err
	}

	r.accounts[account.Username] = account
	if err := r.persist(); err != nil {
		log.Err(err).Str("username", account.Username).Msg("error: persisting after update")
		return fmt.Errorf("persist account store: %w", err)
	}

	return nil
}

// Get implements [AccountRepository].
func (r *accountFileRepository) Get(_ context.Context, username string) (models.Account, error) {
	account, ok := r.accounts[username]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return account, nil
}

// List implements [AccountRepository]. The snapshot is sorted by username
// for stable display; the on-disk record order remains unspecified.
func (r *accountFileRepository) List(_ context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Username < accounts[j].Username
	})

	return accounts, nil
}

// persist rewrites the backing file from scratch: every record in the map is
// re-serialized and written, one per line, replacing any previous contents.
// The rewrite goes to a temp file in the same directory which is then
// renamed over the store, so a crash mid-write leaves the previous file
// intact. Record iteration order is unspecified.
func (r *accountFileRepository) persist() error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".accounts-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, account := range r.accounts {
		line, err := encodeRecord(account, r.codec)
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return err
		}

		if _, err := w.Write(line); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write record: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("flush store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}
