// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the osphorctl command-line client.
//
// Each subcommand maps onto one [adapter.ServerAdapter] call and prints the
// result as indented JSON (or the raw token for login).
package client
