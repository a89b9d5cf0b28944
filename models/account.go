// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is the identity record used for authentication.
// It is created once at registration and never rewritten by logins.
type Account struct {
	// Username is the unique account key.
	Username string `json:"username"`

	// PasswordHash is the self-describing Argon2id hash of the secret
	// (algorithm, cost parameters, salt and digest). Never plaintext.
	PasswordHash string `json:"password_hash,omitempty"`
}

// TableName returns the name of the store table holding accounts.
func (a Account) TableName() string {
	return "accounts"
}
