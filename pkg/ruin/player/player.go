// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package player implements the participants of a simulation: players
// holding a balance, and the placeholder entrant used to even out an odd
// number of players when pairing them up.
package player

import (
	"fmt"

	"github.com/google/uuid"
)

// ByeName is the name given to placeholder entrants.
const ByeName = "BYE"

// Player represents a single participant of the simulation.
type Player struct {
	// ID uniquely identifies the Player, since names are not required
	// to be unique.
	ID uuid.UUID

	Name    string
	Balance int

	// Placeholder is set for the synthetic "bye" entrant which only
	// exists to make the number of players even for pairing purposes.
	Placeholder bool
}

// New creates a new Player with the given name and starting balance.
func New(name string, balance int) *Player {
	return &Player{
		ID:      uuid.New(),
		Name:    name,
		Balance: balance,
	}
}

// Bye creates a new placeholder entrant. A placeholder always has a zero
// balance, so it never takes part in a real transfer.
func Bye() *Player {
	return &Player{
		ID:          uuid.New(),
		Name:        ByeName,
		Placeholder: true,
	}
}

// Bust reports whether the Player has run out of money.
func (player *Player) Bust() bool {
	return player.Balance == 0
}

// String returns the "<name>: <balance>" representation of the Player.
func (player *Player) String() string {
	return fmt.Sprintf("%s: %d", player.Name, player.Balance)
}

// Total returns the sum of the balances of the given players.
func Total(players []*Player) int {
	total := 0
	for _, player := range players {
		total += player.Balance
	}

	return total
}

// Solvent returns the players which still have a positive balance, in the
// order they appear in the given list.
func Solvent(players []*Player) []*Player {
	var solvent []*Player
	for _, player := range players {
		if player.Balance > 0 {
			solvent = append(solvent, player)
		}
	}

	return solvent
}
