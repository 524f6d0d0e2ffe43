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

// Package flip implements the transaction engine of the simulation: a fair
// coin flip between two players which moves a single unit of money from
// the loser to the winner.
package flip

import (
	"math/rand"

	"laptudirm.com/x/ruin/pkg/ruin/player"
)

// Source is a source of independent uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a pseudo-random Source seeded with the given value.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Transfer flips a coin between the heads and the tails player. A draw
// below 0.5 is tails, and the tails player takes one unit from the heads
// player; anything else is heads, and the reverse happens.
//
// If either player has a zero balance the flip is skipped without drawing
// from the source. This covers both placeholder entrants and players who
// went bust but have not been eliminated yet.
func Transfer(src Source, heads, tails *player.Player) Result {
	if heads.Balance == 0 || tails.Balance == 0 {
		return Skipped
	}

	if src.Float64() < 0.5 {
		heads.Balance--
		tails.Balance++
		return Tails
	}

	heads.Balance++
	tails.Balance--
	return Heads
}
