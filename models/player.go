// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Default rating payload assigned to every newly registered player.
const (
	DefaultExp        uint32 = 0
	DefaultRating     uint16 = 1500
	DefaultDeviation  uint16 = 300
	DefaultVolatility uint16 = 6000 // 0.6 scaled by 10^4
)

// Rank is the opaque rating payload of a player. The server never computes
// it; it only stores and returns what is set.
type Rank struct {
	Exp        uint32 `json:"exp"`
	Rating     uint16 `json:"rating"`
	Deviation  uint16 `json:"deviation"`
	Volatility uint16 `json:"volatility"`
}

// DefaultRank returns the rank every player starts with.
func DefaultRank() Rank {
	return Rank{
		Exp:        DefaultExp,
		Rating:     DefaultRating,
		Deviation:  DefaultDeviation,
		Volatility: DefaultVolatility,
	}
}

// Player is the gameplay record stored under the player's username.
//
// Data holds custom fields constrained to the schema catalog: it is
// normalized against the catalog on every write, so a persisted Player
// carries exactly the catalog's key set.
type Player struct {
	// Username is the unique, immutable key shared with [Account].
	Username string `json:"username"`

	// Display is the name shown to other players.
	Display string `json:"display"`

	// Avatar is an opaque client-side avatar reference.
	Avatar string `json:"avatar"`

	// Rank is assigned by the server on registration; client input is ignored.
	Rank Rank `json:"rank"`

	// Data is the schema-constrained custom data bag.
	Data map[string]Value `json:"data"`
}

// TableName returns the name of the store table holding players.
func (p Player) TableName() string {
	return "players"
}

// PlayerSubmission is a player record as sent by a client. Data values stay
// undecoded until they are matched against the catalog, so a key the catalog
// does not know may carry any JSON.
type PlayerSubmission struct {
	Username string                     `json:"username"`
	Display  string                     `json:"display"`
	Avatar   string                     `json:"avatar"`
	Data     map[string]json.RawMessage `json:"data"`
}
