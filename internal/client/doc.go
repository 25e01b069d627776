// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive ATM application runtime.
//
// It wires the terminal UI flows and the account services into a single
// process lifecycle: login, session, logout, repeat.
package client
