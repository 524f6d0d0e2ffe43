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

// Package elimination decides when bankrupt players are removed from the
// active set of a simulation.
package elimination

import (
	"github.com/google/uuid"

	"laptudirm.com/x/ruin/pkg/ruin/player"
)

// DefaultThreshold is the number of simultaneously bust players, not
// counting placeholders, needed to trigger an elimination. A single bust
// player is left in the set until a second one joins them at zero.
const DefaultThreshold = 2

// Decision is the outcome of an elimination check.
type Decision struct {
	// Bust is set if an elimination was triggered.
	Bust bool

	// Busted is the number of non-placeholder players with a zero balance.
	Busted int

	// Remove contains the IDs of all the players which need to be removed
	// from the set, placeholders included. It is empty unless Bust is set.
	Remove []uuid.UUID
}

// Monitor checks a player set for bust players.
type Monitor struct {
	// Threshold is the minimum number of bust players which triggers an
	// elimination. Values below 1 mean DefaultThreshold.
	Threshold int
}

func (monitor Monitor) threshold() int {
	if monitor.Threshold < 1 {
		return DefaultThreshold
	}

	return monitor.Threshold
}

// Check inspects the given players and decides whether any of them need to
// be eliminated. It does not modify the player set.
func (monitor Monitor) Check(players []*player.Player) Decision {
	var decision Decision
	for _, p := range players {
		if p.Bust() && !p.Placeholder {
			decision.Busted++
		}
	}

	if decision.Busted < monitor.threshold() {
		return decision
	}

	decision.Bust = true
	for _, p := range players {
		if p.Bust() {
			decision.Remove = append(decision.Remove, p.ID)
		}
	}

	return decision
}

// CheckAndRemove checks the given players and applies the resulting
// Decision. It returns the new player set, and whether anyone was removed.
func (monitor Monitor) CheckAndRemove(players []*player.Player) ([]*player.Player, bool) {
	decision := monitor.Check(players)
	if !decision.Bust {
		return players, false
	}

	return Apply(players, decision), true
}

// Apply returns a new player set without the players the Decision removes.
// The relative order of the remaining players is preserved. IDs which are
// not part of the given set are ignored.
func Apply(players []*player.Player, decision Decision) []*player.Player {
	if !decision.Bust {
		return players
	}

	removed := make(map[uuid.UUID]bool, len(decision.Remove))
	for _, id := range decision.Remove {
		removed[id] = true
	}

	remaining := make([]*player.Player, 0, len(players))
	for _, p := range players {
		if !removed[p.ID] {
			remaining = append(remaining, p)
		}
	}

	return remaining
}
